package codec

import (
	"errors"
	"fmt"
)

// Kind tags which decode stage rejected a fragment.
type Kind int

const (
	KindEmptyFragment Kind = iota + 1
	KindDecodeFailure
	KindParseFailure
)

var (
	ErrEmptyFragment = errors.New("no data")
	ErrDecodeFailure = errors.New("corrupt encoding")
	ErrParseFailure  = errors.New("malformed payload")
)

func (k Kind) String() string {
	switch k {
	case KindEmptyFragment:
		return "empty_fragment"
	case KindDecodeFailure:
		return "decode_failure"
	case KindParseFailure:
		return "parse_failure"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) sentinel() error {
	switch k {
	case KindEmptyFragment:
		return ErrEmptyFragment
	case KindDecodeFailure:
		return ErrDecodeFailure
	case KindParseFailure:
		return ErrParseFailure
	}
	return nil
}

// DecodeError is the only error Decode returns.
type DecodeError struct {
	Kind Kind
	Err  error // underlying cause, nil for KindEmptyFragment
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return e.Kind.sentinel().Error()
	}
	return fmt.Sprintf("%s: %v", e.Kind.sentinel(), e.Err)
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

// Message is the text shown in place of the list when decoding fails.
func (e *DecodeError) Message() string {
	if e.Kind == KindEmptyFragment {
		return "No list data found."
	}
	return "Invalid or corrupted list data"
}

func newDecodeError(k Kind, err error) *DecodeError {
	return &DecodeError{Kind: k, Err: err}
}
