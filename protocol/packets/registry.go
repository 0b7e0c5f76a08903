package packets

import "github.com/mwath/mcli/protocol"

// NewDefaultRegistry builds a fresh Registry with every packet type this
// package defines bound to its (state, direction, id). It is called
// explicitly by client construction rather than built once at import time,
// so a process can run more than one independently-configured client.
func NewDefaultRegistry() (*protocol.Registry, error) {
	reg := protocol.NewRegistry()

	factories := []func() protocol.Packet{
		func() protocol.Packet { return &Handshake{} },

		func() protocol.Packet { return &StatusRequest{} },
		func() protocol.Packet { return &PingRequest{} },
		func() protocol.Packet { return &StatusResponse{} },
		func() protocol.Packet { return &PongResponse{} },

		func() protocol.Packet { return &LoginStart{} },
		func() protocol.Packet { return &EncryptionResponse{} },
		func() protocol.Packet { return &LoginPluginResponse{} },
		func() protocol.Packet { return &DisconnectLogin{} },
		func() protocol.Packet { return &EncryptionRequest{} },
		func() protocol.Packet { return &LoginSuccess{} },
		func() protocol.Packet { return &SetCompression{} },
		func() protocol.Packet { return &LoginPluginRequest{} },

		func() protocol.Packet { return &SpawnEntity{} },
		func() protocol.Packet { return &SpawnPlayer{} },
		func() protocol.Packet { return &JoinGame{} },
	}

	for _, factory := range factories {
		if err := reg.Register(factory); err != nil {
			return nil, err
		}
	}

	return reg, nil
}
