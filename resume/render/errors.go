package render

import "fmt"

// IOError reports a failure writing the rendered document to disk.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// StyleError reports an internal invariant violation while constructing
// document nodes. It indicates a programming defect, not a recoverable
// runtime condition.
type StyleError struct {
	Op     string
	Reason string
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("style %s: %s", e.Op, e.Reason)
}
