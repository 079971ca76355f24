package proc

import (
	"errors"
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"github.com/rip-tui/rip/pkg/model"
)

// TCP and UDP sockets, listening state only, no host or port name resolution.
var lsofArgs = []string{"-iTCP", "-iUDP", "-sTCP:LISTEN", "-P", "-n"}

// lsof columns: COMMAND PID USER FD TYPE DEVICE SIZE/OFF NODE NAME
const (
	colCommand = 0
	colPID     = 1
	colType    = 4
	colNode    = 7
	colName    = 8
	minColumns = 9
)

type Scanner struct {
	opts options
}

func NewScanner(opts ...Option) *Scanner {
	return &Scanner{opts: newOptions(opts)}
}

// Scan lists the processes bound to listening ports. It never fails: if lsof
// cannot be started the result is empty.
func (s *Scanner) Scan() []model.PortBinding {
	out, err := s.opts.run("lsof", lsofArgs...)
	if err != nil {
		// lsof exits 1 when nothing matched; the output is still usable.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			s.opts.logger.Warn("lsof failed to start", "err", err)
			return nil
		}
		s.opts.logger.Debug("lsof exited non-zero", "code", exitErr.ExitCode())
	}

	bindings := ParseLsof(string(out))
	s.opts.logger.Debug("scanned listening sockets", "count", len(bindings))
	return bindings
}

// ParseLsof turns an lsof report into port bindings, one per pid, sorted by
// port. Rows that cannot be parsed are skipped.
func ParseLsof(report string) []model.PortBinding {
	lines := strings.Split(report, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}

	var bindings []model.PortBinding
	seen := make(map[int]bool)

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < minColumns {
			continue
		}

		pid, err := strconv.Atoi(fields[colPID])
		if err != nil || pid < 0 {
			continue
		}
		if seen[pid] {
			continue
		}

		port := parsePort(fields[colName])
		if port == 0 {
			continue
		}

		seen[pid] = true
		bindings = append(bindings, model.PortBinding{
			PID:      pid,
			Port:     port,
			Protocol: parseProtocol(fields[colType], fields[colNode]),
			Name:     fields[colCommand],
		})
	}

	sort.SliceStable(bindings, func(i, j int) bool {
		return bindings[i].Port < bindings[j].Port
	})
	return bindings
}

func parseProtocol(typ, node string) model.Protocol {
	switch {
	case strings.Contains(typ, "TCP") || strings.Contains(node, "TCP"):
		return model.ProtocolTCP
	case strings.Contains(typ, "UDP") || strings.Contains(node, "UDP"):
		return model.ProtocolUDP
	default:
		return model.ProtocolUnknown
	}
}

// parsePort extracts the port from "host:port", "*:port" or "[::1]:port".
// Anything else yields 0.
func parsePort(addr string) uint16 {
	idx := strings.LastIndex(addr, ":")
	if idx == -1 {
		return 0
	}
	port, err := strconv.ParseUint(addr[idx+1:], 10, 16)
	if err != nil {
		return 0
	}
	return uint16(port)
}
