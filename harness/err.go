package harness

import (
	"errors"

	"github.com/ezrec/pfpu/translate"
)

var f = translate.From

var (
	ErrCheckFailed = errors.New(f("check failed"))
	ErrNoTests     = errors.New(f("no test functions"))
)

// ErrCheck is raised by a failed expect().
type ErrCheck struct {
	Message string
}

func (err *ErrCheck) Error() string {
	if len(err.Message) == 0 {
		return ErrCheckFailed.Error()
	}
	return f("check failed: %v", err.Message)
}

func (err *ErrCheck) Unwrap() error {
	return ErrCheckFailed
}

// ErrArgument reports a builtin argument out of range.
type ErrArgument struct {
	Builtin string
	Arg     string
	Value   string
}

func (err *ErrArgument) Error() string {
	return f("%v: invalid %v %v", err.Builtin, err.Arg, err.Value)
}

// ErrScript indicates the script that failed to load or run.
type ErrScript struct {
	Filename string
	Err      error
}

func (err *ErrScript) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}

// ErrTest indicates the test function that failed.
type ErrTest struct {
	Name string
	Err  error
}

func (err *ErrTest) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrTest) Unwrap() error {
	return err.Err
}
