package console

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		raw      string
		expected token
	}{
		{raw: "2", expected: token{kind: tokenNumber, value: 2, raw: "2"}},
		{raw: "-7", expected: token{kind: tokenNumber, value: -7, raw: "-7"}},
		{raw: "+3", expected: token{kind: tokenNumber, value: 3, raw: "+3"}},
		{raw: "1000000", expected: token{kind: tokenNumber, value: 1000000, raw: "1000000"}},
		{raw: "q", expected: token{kind: tokenQuit, raw: "q"}},
		{raw: "Q", expected: token{kind: tokenQuit, raw: "Q"}},
		{raw: "quit", expected: token{kind: tokenGarbage, raw: "quit"}},
		{raw: "!#$", expected: token{kind: tokenGarbage, raw: "!#$"}},
		{raw: "1.5", expected: token{kind: tokenGarbage, raw: "1.5"}},
		{raw: "four", expected: token{kind: tokenGarbage, raw: "four"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, classify(tt.raw))
		})
	}
}

func TestTokenizer_Next(t *testing.T) {
	t.Run("Splits on any whitespace and ends cleanly", func(t *testing.T) {
		// Given: input spread over lines and tabs
		tok := newTokenizer(strings.NewReader("1\t2\n  q \n"))

		// When: reading every token
		kinds := []tokenKind{}
		for {
			next := tok.next()
			kinds = append(kinds, next.kind)
			if next.kind == tokenEnd {
				break
			}
		}

		// Then: three tokens then the end, with no read error
		assert.Equal(t, []tokenKind{tokenNumber, tokenNumber, tokenQuit, tokenEnd}, kinds)
		require.NoError(t, tok.err())
	})

	t.Run("Word longer than the default scanner buffer is kept whole", func(t *testing.T) {
		// Given: a 70 KiB word followed by a number
		long := strings.Repeat("a", 70*1024)
		tok := newTokenizer(strings.NewReader(long + " 2"))

		// When: reading two tokens
		first := tok.next()
		second := tok.next()

		// Then: the long word is garbage and the number still follows
		assert.Equal(t, tokenGarbage, first.kind)
		assert.Equal(t, long, first.raw)
		assert.Equal(t, token{kind: tokenNumber, value: 2, raw: "2"}, second)
		require.NoError(t, tok.err())
	})

	t.Run("Read failure ends the stream", func(t *testing.T) {
		errBroken := errors.New("broken pipe")
		tok := newTokenizer(iotest.ErrReader(errBroken))

		assert.Equal(t, tokenEnd, tok.next().kind)
		require.ErrorIs(t, tok.err(), errBroken)
	})
}
