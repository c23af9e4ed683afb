package console

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

const quitToken = "q"

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenQuit
	tokenGarbage
	tokenEnd
)

// token is one whitespace-separated word of input, classified.
type token struct {
	kind  tokenKind
	value int
	raw   string
}

type tokenizer struct {
	scanner *bufio.Scanner
}

func newTokenizer(in io.Reader) *tokenizer {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	// words of any length must reach classify, the default cap would end the stream
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)

	return &tokenizer{scanner: scanner}
}

// next - reads one token. A drained or failed reader yields tokenEnd.
func (that *tokenizer) next() token {
	if !that.scanner.Scan() {
		return token{kind: tokenEnd}
	}

	return classify(that.scanner.Text())
}

// err returns the read error that ended the stream, nil on a clean EOF.
func (that *tokenizer) err() error {
	return that.scanner.Err()
}

func classify(raw string) token {
	if value, err := strconv.Atoi(raw); err == nil {
		return token{kind: tokenNumber, value: value, raw: raw}
	}

	if strings.EqualFold(raw, quitToken) {
		return token{kind: tokenQuit, raw: raw}
	}

	return token{kind: tokenGarbage, raw: raw}
}
