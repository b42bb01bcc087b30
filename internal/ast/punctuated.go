package ast

import (
	"fmt"

	"graft/internal/token"
)

// Punctuated is an ordered element sequence interleaved with separator
// tokens, remembering whether a trailing separator was present.
//
// Invariant: len(Seps) == len(Items) when Trailing (or both empty), and
// len(Seps) == len(Items)-1 otherwise.
type Punctuated[T any] struct {
	Items    []T
	Seps     []token.Token
	Trailing bool
}

// Len reports the number of elements, ignoring separators.
func (p *Punctuated[T]) Len() int {
	return len(p.Items)
}

// Empty reports whether the sequence has no elements.
func (p *Punctuated[T]) Empty() bool {
	return len(p.Items) == 0
}

// At returns the i-th element.
func (p *Punctuated[T]) At(i int) T {
	return p.Items[i]
}

// Push appends an element. Pushing after a separator clears the trailing
// flag, since the separator now sits between two elements.
func (p *Punctuated[T]) Push(item T) {
	p.Items = append(p.Items, item)
	p.Trailing = false
}

// PushSep appends a separator token after the last element.
func (p *Punctuated[T]) PushSep(sep token.Token) {
	p.Seps = append(p.Seps, sep)
	p.Trailing = len(p.Seps) == len(p.Items)
}

// Check verifies the separator invariant; grammar rules and folds must
// never produce a sequence that fails it.
func (p *Punctuated[T]) Check() error {
	switch {
	case len(p.Items) == 0 && len(p.Seps) == 0:
		return nil
	case p.Trailing && len(p.Seps) == len(p.Items):
		return nil
	case !p.Trailing && len(p.Seps) == len(p.Items)-1:
		return nil
	default:
		return fmt.Errorf("punctuated: %d items, %d separators, trailing=%v",
			len(p.Items), len(p.Seps), p.Trailing)
	}
}
