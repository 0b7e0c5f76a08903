package packets

import (
	ns "github.com/mwath/mcli/net_structures"
	"github.com/mwath/mcli/protocol"
)

// usernameConstraint mirrors the original implementation's constr(3, 16)
// on the login username field.
var usernameConstraint = ns.StringConstraint{Min: 3, Max: 16}

// LoginStart begins the login sequence with the player's chosen username.
type LoginStart struct {
	Name string
}

func (*LoginStart) ID() int32                    { return 0x00 }
func (*LoginStart) State() protocol.State         { return protocol.Login }
func (*LoginStart) Direction() protocol.Direction { return protocol.Serverbound }

func (p *LoginStart) Read(r *protocol.Reader) error {
	v, err := r.ReadConstrainedString(usernameConstraint)
	p.Name = v
	return err
}

func (p *LoginStart) Write(w *protocol.Writer) error {
	return w.WriteConstrainedString(p.Name, usernameConstraint)
}

// EncryptionResponse answers an EncryptionRequest with the shared secret
// and verify token, both RSA-encrypted under the server's public key.
type EncryptionResponse struct {
	SharedSecret []byte
	VerifyToken  []byte
}

func (*EncryptionResponse) ID() int32                    { return 0x01 }
func (*EncryptionResponse) State() protocol.State         { return protocol.Login }
func (*EncryptionResponse) Direction() protocol.Direction { return protocol.Serverbound }

func (p *EncryptionResponse) Read(r *protocol.Reader) error {
	var err error
	if p.SharedSecret, err = r.ReadByteArray(); err != nil {
		return err
	}
	p.VerifyToken, err = r.ReadByteArray()
	return err
}

func (p *EncryptionResponse) Write(w *protocol.Writer) error {
	if err := w.WriteByteArray(p.SharedSecret); err != nil {
		return err
	}
	return w.WriteByteArray(p.VerifyToken)
}

// LoginPluginResponse answers a server-specific LoginPluginRequest.
// Data is only present (and fills the remainder of the packet) when
// Successful is true.
type LoginPluginResponse struct {
	MessageID  int32
	Successful bool
	Data       []byte
}

func (*LoginPluginResponse) ID() int32                    { return 0x02 }
func (*LoginPluginResponse) State() protocol.State         { return protocol.Login }
func (*LoginPluginResponse) Direction() protocol.Direction { return protocol.Serverbound }

func (p *LoginPluginResponse) Read(r *protocol.Reader) error {
	var err error
	if p.MessageID, err = r.ReadVarInt(); err != nil {
		return err
	}
	if p.Successful, err = r.ReadBool(); err != nil {
		return err
	}
	if p.Successful {
		p.Data = r.ReadRemaining()
	} else {
		p.Data = nil
	}
	return nil
}

func (p *LoginPluginResponse) Write(w *protocol.Writer) error {
	if err := w.WriteVarInt(p.MessageID); err != nil {
		return err
	}
	if err := w.WriteBool(p.Successful); err != nil {
		return err
	}
	if p.Successful {
		w.WriteFixed(p.Data)
	}
	return nil
}

// DisconnectLogin carries the server's reason for closing the connection
// during login, as a JSON chat component string.
type DisconnectLogin struct {
	Reason string
}

func (*DisconnectLogin) ID() int32                    { return 0x00 }
func (*DisconnectLogin) State() protocol.State         { return protocol.Login }
func (*DisconnectLogin) Direction() protocol.Direction { return protocol.Clientbound }

func (p *DisconnectLogin) Read(r *protocol.Reader) error {
	v, err := r.ReadString()
	p.Reason = v
	return err
}

func (p *DisconnectLogin) Write(w *protocol.Writer) error {
	return w.WriteString(p.Reason)
}

// EncryptionRequest is the online-mode challenge: a DER-encoded RSA public
// key and a verify token the client must echo back encrypted.
type EncryptionRequest struct {
	ServerID    string
	PublicKey   []byte
	VerifyToken []byte
}

func (*EncryptionRequest) ID() int32                    { return 0x01 }
func (*EncryptionRequest) State() protocol.State         { return protocol.Login }
func (*EncryptionRequest) Direction() protocol.Direction { return protocol.Clientbound }

func (p *EncryptionRequest) Read(r *protocol.Reader) error {
	var err error
	if p.ServerID, err = r.ReadString(); err != nil {
		return err
	}
	if p.PublicKey, err = r.ReadByteArray(); err != nil {
		return err
	}
	p.VerifyToken, err = r.ReadByteArray()
	return err
}

func (p *EncryptionRequest) Write(w *protocol.Writer) error {
	if err := w.WriteString(p.ServerID); err != nil {
		return err
	}
	if err := w.WriteByteArray(p.PublicKey); err != nil {
		return err
	}
	return w.WriteByteArray(p.VerifyToken)
}

// LoginProperty is one signed profile property (e.g. "textures") carried
// by LoginSuccess.
type LoginProperty struct {
	Name      string
	Value     string
	Signature string // empty when the property is unsigned
}

// LoginSuccess transitions the connection to Play.
type LoginSuccess struct {
	UUID       ns.UUID
	Username   string
	Properties []LoginProperty
}

func (*LoginSuccess) ID() int32                    { return 0x02 }
func (*LoginSuccess) State() protocol.State         { return protocol.Login }
func (*LoginSuccess) Direction() protocol.Direction { return protocol.Clientbound }

func (p *LoginSuccess) Read(r *protocol.Reader) error {
	var err error
	if p.UUID, err = r.ReadUUID(); err != nil {
		return err
	}
	if p.Username, err = r.ReadString(); err != nil {
		return err
	}

	count, err := r.ReadVarInt()
	if err != nil {
		return err
	}

	p.Properties = make([]LoginProperty, 0, count)
	for range count {
		var prop LoginProperty
		if prop.Name, err = r.ReadString(); err != nil {
			return err
		}
		if prop.Value, err = r.ReadString(); err != nil {
			return err
		}
		signed, err := r.ReadBool()
		if err != nil {
			return err
		}
		if signed {
			if prop.Signature, err = r.ReadString(); err != nil {
				return err
			}
		}
		p.Properties = append(p.Properties, prop)
	}
	return nil
}

func (p *LoginSuccess) Write(w *protocol.Writer) error {
	if err := w.WriteUUID(p.UUID); err != nil {
		return err
	}
	if err := w.WriteString(p.Username); err != nil {
		return err
	}
	if err := w.WriteVarInt(int32(len(p.Properties))); err != nil {
		return err
	}
	for _, prop := range p.Properties {
		if err := w.WriteString(prop.Name); err != nil {
			return err
		}
		if err := w.WriteString(prop.Value); err != nil {
			return err
		}
		signed := prop.Signature != ""
		if err := w.WriteBool(signed); err != nil {
			return err
		}
		if signed {
			if err := w.WriteString(prop.Signature); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetCompression adjusts the connection's framing; it is not a state
// transition. Its side effect must be applied before the next packet is
// parsed (see protocol.Framer.CompressionThreshold).
type SetCompression struct {
	Threshold int32
}

func (*SetCompression) ID() int32                    { return 0x03 }
func (*SetCompression) State() protocol.State         { return protocol.Login }
func (*SetCompression) Direction() protocol.Direction { return protocol.Clientbound }

func (p *SetCompression) Read(r *protocol.Reader) error {
	v, err := r.ReadVarInt()
	p.Threshold = v
	return err
}

func (p *SetCompression) Write(w *protocol.Writer) error {
	return w.WriteVarInt(p.Threshold)
}

// LoginPluginRequest is a server-specific challenge the client may answer
// with LoginPluginResponse; Data fills the rest of the packet.
type LoginPluginRequest struct {
	MessageID int32
	Channel   string
	Data      []byte
}

func (*LoginPluginRequest) ID() int32                    { return 0x04 }
func (*LoginPluginRequest) State() protocol.State         { return protocol.Login }
func (*LoginPluginRequest) Direction() protocol.Direction { return protocol.Clientbound }

func (p *LoginPluginRequest) Read(r *protocol.Reader) error {
	var err error
	if p.MessageID, err = r.ReadVarInt(); err != nil {
		return err
	}
	if p.Channel, err = r.ReadIdentifier(); err != nil {
		return err
	}
	p.Data = r.ReadRemaining()
	return nil
}

func (p *LoginPluginRequest) Write(w *protocol.Writer) error {
	if err := w.WriteVarInt(p.MessageID); err != nil {
		return err
	}
	if err := w.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	w.WriteFixed(p.Data)
	return nil
}
