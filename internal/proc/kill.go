package proc

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

var ErrInvalidPID = errors.New("invalid pid")

// Terminator force-kills processes through the kill utility.
type Terminator struct {
	opts options
}

func NewTerminator(opts ...Option) *Terminator {
	return &Terminator{opts: newOptions(opts)}
}

// Terminate sends SIGKILL to pid exactly once. There is no graceful attempt
// first and no retry.
func (t *Terminator) Terminate(pid int) error {
	if pid <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPID, pid)
	}

	t.opts.logger.Debug("killing process", "pid", pid)
	_, err := t.opts.run("kill", "-9", strconv.Itoa(pid))
	if err == nil {
		t.opts.logger.Info("process killed", "pid", pid)
		return nil
	}

	t.opts.logger.Warn("kill failed", "pid", pid, "err", err)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("kill command failed with status: %s", exitErr.ProcessState)
	}
	return fmt.Errorf("run kill: %w", err)
}
