package model

type Protocol string

const (
	ProtocolTCP     Protocol = "TCP"
	ProtocolUDP     Protocol = "UDP"
	ProtocolUnknown Protocol = "???"
)

func (p Protocol) String() string {
	if p == "" {
		return string(ProtocolUnknown)
	}
	return string(p)
}

// PortBinding associates a listening port with the process that owns it.
type PortBinding struct {
	PID      int
	Port     uint16
	Protocol Protocol
	Name     string // as reported by lsof, may be truncated
}
