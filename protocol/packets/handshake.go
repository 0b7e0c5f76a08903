// Package packets contains the concrete packet schemas for the
// handshaking, status, login, and a handful of supplemental play-state
// packets, plus the default registry binding them to the wire.
package packets

import "github.com/mwath/mcli/protocol"

// Next-state values carried by Handshake, per the wire protocol.
const (
	NextStateStatus int32 = 1
	NextStateLogin  int32 = 2
)

// Handshake is the first packet sent on any connection. The client
// immediately assumes the requested state; the server never acknowledges it.
type Handshake struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       int32
}

func (*Handshake) ID() int32                    { return 0x00 }
func (*Handshake) State() protocol.State         { return protocol.Handshaking }
func (*Handshake) Direction() protocol.Direction { return protocol.Serverbound }

func (p *Handshake) Read(r *protocol.Reader) error {
	var err error
	if p.ProtocolVersion, err = r.ReadVarInt(); err != nil {
		return err
	}
	if p.ServerAddress, err = r.ReadString(); err != nil {
		return err
	}
	if p.ServerPort, err = r.ReadUShort(); err != nil {
		return err
	}
	if p.NextState, err = r.ReadVarInt(); err != nil {
		return err
	}
	return nil
}

func (p *Handshake) Write(w *protocol.Writer) error {
	if err := w.WriteVarInt(p.ProtocolVersion); err != nil {
		return err
	}
	if err := w.WriteString(p.ServerAddress); err != nil {
		return err
	}
	if err := w.WriteUShort(p.ServerPort); err != nil {
		return err
	}
	return w.WriteVarInt(p.NextState)
}
