// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package harness

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/pfpu/emulator"
)

// TEST_PREFIX marks the top level functions run as tests.
const TEST_PREFIX = "test_"

// Harness runs Starlark test scripts against emulated machines.
type Harness struct {
	Verbose bool      // If set, logs machine activity.
	Stepped bool      // If set, the PFPU only runs when a script calls wait().
	Limit   int       // Cycle limit of wait(); zero or less is unbounded.
	Output  io.Writer // Destination of print(); nil discards.
}

// Result is the outcome of a single test function.
type Result struct {
	Name string
	Err  error
}

func (res Result) String() string {
	if res.Err != nil {
		return fmt.Sprintf("FAIL %s: %v", res.Name, res.Err)
	}
	return fmt.Sprintf("ok   %s", res.Name)
}

// Failed joins the errors of every failed result.
func Failed(results []Result) error {
	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, &ErrTest{Name: res.Name, Err: res.Err})
		}
	}
	return errors.Join(errs...)
}

// session is the machine currently under test. Builtins are bound to the
// session, so each test can get a fresh machine.
type session struct {
	harness *Harness
	emu     *emulator.Emulator
}

func (h *Harness) newEmulator() (emu *emulator.Emulator, err error) {
	emu, err = emulator.NewEmulator()
	if err != nil {
		return
	}
	emu.Verbose = h.Verbose
	emu.Pfpu.Stepped = h.Stepped
	return
}

// predeclared returns the builtins plus every machine define that parses
// as an integer.
func (ses *session) predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{}
	for key, str := range ses.emu.Defines() {
		value, err := strconv.ParseUint(str, 0, 64)
		if err != nil {
			continue
		}
		pred[key] = starlark.MakeUint64(value)
	}

	for name, fn := range ses.builtins() {
		pred[name] = starlark.NewBuiltin(name, fn)
	}

	return
}

func (h *Harness) thread(name string) *starlark.Thread {
	return &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			if h.Output != nil {
				fmt.Fprintln(h.Output, msg)
			}
		},
	}
}

// Run executes the script src, then runs each of its test functions in
// name order, each against a newly created machine. src may be anything
// starlark.ExecFileOptions accepts.
func (h *Harness) Run(filename string, src any) (results []Result, err error) {
	ses := &session{harness: h}
	ses.emu, err = h.newEmulator()
	if err != nil {
		return
	}

	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, h.thread(filename), filename, src, ses.predeclared())
	if err != nil {
		err = &ErrScript{Filename: filename, Err: err}
		return
	}

	for _, name := range globals.Keys() {
		if !strings.HasPrefix(name, TEST_PREFIX) {
			continue
		}
		fn, ok := globals[name].(*starlark.Function)
		if !ok {
			continue
		}

		ses.emu, err = h.newEmulator()
		if err != nil {
			return
		}

		if h.Verbose {
			log.Printf("harness: %s: %s", filename, name)
		}

		_, test_err := starlark.Call(h.thread(name), fn, nil, nil)
		results = append(results, Result{Name: name, Err: test_err})
	}

	if len(results) == 0 {
		err = &ErrScript{Filename: filename, Err: ErrNoTests}
	}

	return
}
