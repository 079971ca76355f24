package proc

import (
	"io"
	"os/exec"

	"github.com/charmbracelet/log"
)

// Runner executes an external utility and returns its standard output.
// A non-zero exit status is reported as *exec.ExitError alongside whatever
// output was captured.
type Runner func(name string, args ...string) ([]byte, error)

func execRunner(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

type options struct {
	run    Runner
	logger *log.Logger
}

type Option func(*options)

// WithRunner replaces the command executor, mostly useful for tests.
func WithRunner(r Runner) Option {
	return func(o *options) {
		if r != nil {
			o.run = r
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		run:    execRunner,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
