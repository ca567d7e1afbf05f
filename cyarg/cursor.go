package cyarg

import (
	"slices"

	"github.com/bauersmatthew/cyarg/internal/pool"
)

// tokenCursor provides sequential, single-pass read access over an
// ordered token list. Tokens already read are never mutated, but new
// tokens can be spliced in at the read mark; the loader uses this to
// re-present a decomposed short-flag bundle without a recursive parser.
type tokenCursor struct {
	tokens []string
	mark   int
	buf    *[]string // pooled backing slice, returned on release
}

// newTokenCursor copies args into a pooled buffer and positions the
// mark at the first token. The caller's slice is never mutated.
func newTokenCursor(args []string) *tokenCursor {
	buf := pool.GetTokenBuffer()
	*buf = append(*buf, args...)
	return &tokenCursor{tokens: *buf, buf: buf}
}

// HasNext reports whether a token remains at or after the mark.
func (c *tokenCursor) HasNext() bool {
	return c.mark < len(c.tokens)
}

// Next returns the token at the mark and advances the mark. The second
// return is false when the cursor is exhausted.
func (c *tokenCursor) Next() (string, bool) {
	if c.mark >= len(c.tokens) {
		return "", false
	}
	tok := c.tokens[c.mark]
	c.mark++
	return tok, true
}

// Peek returns the token at the mark without advancing. The second
// return is false when the cursor is exhausted.
func (c *tokenCursor) Peek() (string, bool) {
	if c.mark >= len(c.tokens) {
		return "", false
	}
	return c.tokens[c.mark], true
}

// InsertAhead splices tokens, in the given order, directly at the mark
// so they are read before any previously-pending token.
func (c *tokenCursor) InsertAhead(tokens ...string) {
	c.tokens = slices.Insert(c.tokens, c.mark, tokens...)
}

// release returns the backing buffer to the pool. The cursor must not
// be used afterwards.
func (c *tokenCursor) release() {
	if c.buf == nil {
		return
	}
	*c.buf = c.tokens
	pool.PutTokenBuffer(c.buf)
	c.buf = nil
	c.tokens = nil
}
