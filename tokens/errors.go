package tokens

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownVariant  = errors.New("unknown theme variant")
	ErrUnknownToken    = errors.New("unknown token")
	ErrMissingToken    = errors.New("missing required token")
	ErrInvalidValue    = errors.New("invalid token value")
	ErrTouchMismatch   = errors.New("touch spacing does not match touch target size")
	ErrBreakpointOrder = errors.New("breakpoints must be strictly ascending")
	ErrParity          = errors.New("theme variants diverge outside optional tokens")
)

// TokenError reports a problem with a single token.
type TokenError struct {
	Path  string
	Value string
	Err   error
}

func (e *TokenError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s = %q: %v", e.Path, e.Value, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}
