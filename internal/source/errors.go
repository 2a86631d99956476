package source

import "fmt"

// InvalidArgumentError reports a bad positional argument for random mode.
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Arg == "" {
		return "invalid argument: " + e.Reason
	}
	return fmt.Sprintf("invalid argument %q: %s", e.Arg, e.Reason)
}

// SourceNotFoundError is returned in file mode when the places file is absent.
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("places file %s not found", e.Path)
}

func (e *SourceNotFoundError) Unwrap() error {
	return e.Err
}

// ParseError reports a malformed record. Line is 1-based and counts the
// header; it is 0 when the problem concerns the file as a whole.
type ParseError struct {
	Path  string
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	msg := e.Path
	if e.Line > 0 {
		msg += fmt.Sprintf(":%d", e.Line)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": field %s", e.Field)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
