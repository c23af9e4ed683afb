package pkg

import "github.com/google/uuid"

// GenerateNewSessionID - returns a random id used to tag one game session in logs.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
