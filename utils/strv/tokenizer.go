// File: tokenizer.go
// Title: Delimiter Tokenizer
// Description: Stateful splitting of a value into non-empty reference
//              tokens separated by runs of delimiter bytes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package strv

import "iter"

// Tokenizer splits a source value at any byte of a delimiter set. Tokens
// are references into the source and are never empty. The zero Tokenizer
// yields no tokens.
type Tokenizer struct {
	src    Value
	pos    int
	delims [256]bool
}

// NewTokenizer returns a tokenizer positioned at the start of src
func NewTokenizer(src, delims Value) *Tokenizer {
	t := &Tokenizer{}
	t.Init(src, delims)
	return t
}

// Init resets t to the start of src with the given delimiter set. Each
// byte of delims is an independent separator.
func (t *Tokenizer) Init(src, delims Value) {
	t.src = src
	t.pos = 0
	t.delims = [256]bool{}
	for _, c := range delims.read("strv.Tokenizer.Init") {
		t.delims[c] = true
	}
}

// Next stores the next token in *out and reports whether there was one.
// When the source is exhausted *out is left untouched.
func (t *Tokenizer) Next(out *Value) bool {
	data := t.src.read("strv.Tokenizer.Next")

	for t.pos < len(data) && t.delims[data[t.pos]] {
		t.pos++
	}
	if t.pos >= len(data) {
		return false
	}

	start := t.pos
	for t.pos < len(data) && !t.delims[data[t.pos]] {
		t.pos++
	}
	*out = Value{data: data[start:t.pos:t.pos], buf: t.src.buf}
	return true
}

// All returns an iterator over the remaining tokens
func (t *Tokenizer) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		var tok Value
		for t.Next(&tok) {
			if !yield(tok) {
				return
			}
		}
	}
}
