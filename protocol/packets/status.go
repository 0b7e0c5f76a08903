package packets

import "github.com/mwath/mcli/protocol"

// StatusRequest has no fields; sending it prompts a StatusResponse.
type StatusRequest struct{}

func (*StatusRequest) ID() int32                    { return 0x00 }
func (*StatusRequest) State() protocol.State         { return protocol.Status }
func (*StatusRequest) Direction() protocol.Direction { return protocol.Serverbound }
func (*StatusRequest) Read(*protocol.Reader) error   { return nil }
func (*StatusRequest) Write(*protocol.Writer) error  { return nil }

// PingRequest carries an arbitrary payload the server must echo back.
type PingRequest struct {
	Payload int64
}

func (*PingRequest) ID() int32                    { return 0x01 }
func (*PingRequest) State() protocol.State         { return protocol.Status }
func (*PingRequest) Direction() protocol.Direction { return protocol.Serverbound }

func (p *PingRequest) Read(r *protocol.Reader) error {
	v, err := r.ReadLong()
	p.Payload = v
	return err
}

func (p *PingRequest) Write(w *protocol.Writer) error {
	return w.WriteLong(p.Payload)
}

// StatusResponse is the JSON server-list-ping payload.
type StatusResponse struct {
	JSON string
}

func (*StatusResponse) ID() int32                    { return 0x00 }
func (*StatusResponse) State() protocol.State         { return protocol.Status }
func (*StatusResponse) Direction() protocol.Direction { return protocol.Clientbound }

func (p *StatusResponse) Read(r *protocol.Reader) error {
	v, err := r.ReadString()
	p.JSON = v
	return err
}

func (p *StatusResponse) Write(w *protocol.Writer) error {
	return w.WriteString(p.JSON)
}

// PongResponse echoes a PingRequest's payload.
type PongResponse struct {
	Payload int64
}

func (*PongResponse) ID() int32                    { return 0x01 }
func (*PongResponse) State() protocol.State         { return protocol.Status }
func (*PongResponse) Direction() protocol.Direction { return protocol.Clientbound }

func (p *PongResponse) Read(r *protocol.Reader) error {
	v, err := r.ReadLong()
	p.Payload = v
	return err
}

func (p *PongResponse) Write(w *protocol.Writer) error {
	return w.WriteLong(p.Payload)
}
