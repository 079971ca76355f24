package proc

import (
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"
)

func TestTerminateSuccess(t *testing.T) {
	var gotName string
	var gotArgs []string
	term := NewTerminator(WithRunner(func(name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		return nil, nil
	}))

	if err := term.Terminate(4242); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotName != "kill" {
		t.Fatalf("ran %q, want kill", gotName)
	}
	if want := []string{"-9", "4242"}; !reflect.DeepEqual(gotArgs, want) {
		t.Fatalf("args %v want %v", gotArgs, want)
	}
}

func TestTerminateExitStatus(t *testing.T) {
	exitErr := exitError(t, 1)
	term := NewTerminator(WithRunner(func(string, ...string) ([]byte, error) {
		return nil, exitErr
	}))

	err := term.Terminate(4242)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "kill command failed with status") || !strings.Contains(err.Error(), "exit status 1") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestTerminateStartFailure(t *testing.T) {
	term := NewTerminator(WithRunner(func(string, ...string) ([]byte, error) {
		return nil, exec.ErrNotFound
	}))

	err := term.Terminate(4242)
	if !errors.Is(err, exec.ErrNotFound) {
		t.Fatalf("expected wrapped ErrNotFound, got %v", err)
	}
}

func TestTerminateSingleAttempt(t *testing.T) {
	calls := 0
	term := NewTerminator(WithRunner(func(string, ...string) ([]byte, error) {
		calls++
		return nil, errors.New("no such process")
	}))

	_ = term.Terminate(4242)
	if calls != 1 {
		t.Fatalf("kill ran %d times, want 1", calls)
	}
}

func TestTerminateInvalidPID(t *testing.T) {
	called := false
	term := NewTerminator(WithRunner(func(string, ...string) ([]byte, error) {
		called = true
		return nil, nil
	}))

	for _, pid := range []int{0, -1} {
		if err := term.Terminate(pid); !errors.Is(err, ErrInvalidPID) {
			t.Fatalf("pid %d: expected ErrInvalidPID, got %v", pid, err)
		}
	}
	if called {
		t.Fatal("kill must not run for invalid pids")
	}
}
