package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

func main() {
	a := &app{}
	cmd := newRootCmd(a)

	if err := a.execute(context.Background(), cmd); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}

// exitError ends the process with code without printing anything.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// errNoResult is returned when a best-effort helper yields nothing.
var errNoResult = &exitError{code: 1}
