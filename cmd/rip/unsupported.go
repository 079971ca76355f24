//go:build !linux && !darwin && !freebsd

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"rip is only supported on Linux, macOS, and FreeBSD.\n\nIt relies on lsof to find listening sockets and kill to stop processes, neither of which is available on this platform.",
	)
	os.Exit(1)
}
