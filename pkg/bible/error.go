package bible

import (
	"errors"
	"fmt"
)

// CorpusErrorKind classifies corpus load failures.
type CorpusErrorKind string

const (
	FileError  CorpusErrorKind = "file"
	ParseError CorpusErrorKind = "parse"
	RangeError CorpusErrorKind = "range"
)

var (
	ErrInvalidRoot = errors.New("invalid corpus root")
	ErrUnknownBook = errors.New("unknown book")
	ErrNoVerses    = errors.New("corpus has no verses")
)

// CorpusError wraps a load failure with its kind.
type CorpusError struct {
	Kind CorpusErrorKind
	Err  error
}

func (e *CorpusError) Error() string {
	return fmt.Sprintf("bible: %s error: %v", e.Kind, e.Err)
}

func (e *CorpusError) Unwrap() error {
	return e.Err
}
