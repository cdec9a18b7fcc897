package catalogdomain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDataset   = errors.New("invalid dataset")
	ErrTagCycle  = errors.New("tag cycle")
	ErrExhausted = errors.New("all recipes used")
)

// DatasetError reports a malformed or dangling reference found while loading.
type DatasetError struct {
	Path   string
	Reason string
}

func (e *DatasetError) Error() string {
	return fmt.Sprintf("dataset %s: %s", e.Path, e.Reason)
}

func (e *DatasetError) Unwrap() error { return ErrDataset }

// NewDatasetError builds a DatasetError with a formatted reason.
func NewDatasetError(path, format string, args ...any) *DatasetError {
	return &DatasetError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// TagCycleError carries the resolution chain that revisited a tag. The last
// element of Chain is the repeated tag.
type TagCycleError struct {
	Chain []string
}

func (e *TagCycleError) Error() string {
	return "tag cycle: " + strings.Join(e.Chain, " -> ")
}

func (e *TagCycleError) Unwrap() error { return ErrTagCycle }
