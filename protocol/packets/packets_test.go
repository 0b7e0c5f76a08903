package packets_test

import (
	"bytes"
	"testing"

	ns "github.com/mwath/mcli/net_structures"
	"github.com/mwath/mcli/protocol"
	"github.com/mwath/mcli/protocol/packets"
)

func roundTrip(t *testing.T, p protocol.Packet, fresh func() protocol.Packet) protocol.Packet {
	t.Helper()
	w := protocol.NewWriter()
	if err := p.Write(w); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := fresh()
	r := protocol.NewReader(w.Bytes())
	if err := out.Read(r); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
	return out
}

func TestHandshakeRoundTrip(t *testing.T) {
	in := &packets.Handshake{ProtocolVersion: 754, ServerAddress: "play.example.com", ServerPort: 25565, NextState: packets.NextStateLogin}
	out := roundTrip(t, in, func() protocol.Packet { return &packets.Handshake{} }).(*packets.Handshake)
	if *out != *in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestLoginStartEnforcesUsernameConstraint(t *testing.T) {
	p := &packets.LoginStart{Name: "ab"} // shorter than minimum of 3
	w := protocol.NewWriter()
	if err := p.Write(w); err == nil {
		t.Error("Write() with a too-short username should fail")
	}
}

func TestEncryptionRequestResponseRoundTrip(t *testing.T) {
	req := &packets.EncryptionRequest{ServerID: "", PublicKey: []byte{1, 2, 3, 4}, VerifyToken: []byte{5, 6, 7, 8}}
	out := roundTrip(t, req, func() protocol.Packet { return &packets.EncryptionRequest{} }).(*packets.EncryptionRequest)
	if out.ServerID != req.ServerID || !bytes.Equal(out.PublicKey, req.PublicKey) || !bytes.Equal(out.VerifyToken, req.VerifyToken) {
		t.Errorf("got %+v, want %+v", out, req)
	}

	resp := &packets.EncryptionResponse{SharedSecret: []byte{9, 9, 9}, VerifyToken: []byte{5, 6, 7, 8}}
	outResp := roundTrip(t, resp, func() protocol.Packet { return &packets.EncryptionResponse{} }).(*packets.EncryptionResponse)
	if !bytes.Equal(outResp.SharedSecret, resp.SharedSecret) || !bytes.Equal(outResp.VerifyToken, resp.VerifyToken) {
		t.Errorf("got %+v, want %+v", outResp, resp)
	}
}

func TestLoginSuccessRoundTripWithProperties(t *testing.T) {
	u, err := ns.NewUUID("069a79f4-44e9-4726-a5be-fca90e38aaf5")
	if err != nil {
		t.Fatalf("NewUUID: %v", err)
	}

	in := &packets.LoginSuccess{
		UUID:     u,
		Username: "Notch",
		Properties: []packets.LoginProperty{
			{Name: "textures", Value: "base64blob", Signature: "sig"},
			{Name: "unsigned", Value: "plain"},
		},
	}
	out := roundTrip(t, in, func() protocol.Packet { return &packets.LoginSuccess{} }).(*packets.LoginSuccess)

	if out.UUID != in.UUID || out.Username != in.Username || len(out.Properties) != len(in.Properties) {
		t.Fatalf("got %+v, want %+v", out, in)
	}
	for i := range in.Properties {
		if out.Properties[i] != in.Properties[i] {
			t.Errorf("property %d = %+v, want %+v", i, out.Properties[i], in.Properties[i])
		}
	}
}

func TestSetCompressionRoundTrip(t *testing.T) {
	in := &packets.SetCompression{Threshold: 256}
	out := roundTrip(t, in, func() protocol.Packet { return &packets.SetCompression{} }).(*packets.SetCompression)
	if out.Threshold != in.Threshold {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestStatusRoundTrip(t *testing.T) {
	req := &packets.StatusResponse{JSON: `{"description":"a server"}`}
	out := roundTrip(t, req, func() protocol.Packet { return &packets.StatusResponse{} }).(*packets.StatusResponse)
	if out.JSON != req.JSON {
		t.Errorf("got %q, want %q", out.JSON, req.JSON)
	}

	ping := &packets.PingRequest{Payload: 123456789}
	outPing := roundTrip(t, ping, func() protocol.Packet { return &packets.PingRequest{} }).(*packets.PingRequest)
	if outPing.Payload != ping.Payload {
		t.Errorf("got %d, want %d", outPing.Payload, ping.Payload)
	}
}

func TestDefaultRegistryHasNoDuplicates(t *testing.T) {
	if _, err := packets.NewDefaultRegistry(); err != nil {
		t.Fatalf("NewDefaultRegistry: %v", err)
	}
}

func TestLoginPluginRequestResponseRoundTrip(t *testing.T) {
	req := &packets.LoginPluginRequest{MessageID: 7, Channel: "example:channel", Data: []byte{1, 2, 3}}
	outReq := roundTrip(t, req, func() protocol.Packet { return &packets.LoginPluginRequest{} }).(*packets.LoginPluginRequest)
	if outReq.MessageID != req.MessageID || outReq.Channel != req.Channel || !bytes.Equal(outReq.Data, req.Data) {
		t.Errorf("got %+v, want %+v", outReq, req)
	}

	respSuccess := &packets.LoginPluginResponse{MessageID: 7, Successful: true, Data: []byte{9, 9}}
	outSuccess := roundTrip(t, respSuccess, func() protocol.Packet { return &packets.LoginPluginResponse{} }).(*packets.LoginPluginResponse)
	if !bytes.Equal(outSuccess.Data, respSuccess.Data) || !outSuccess.Successful {
		t.Errorf("got %+v, want %+v", outSuccess, respSuccess)
	}

	respFail := &packets.LoginPluginResponse{MessageID: 7, Successful: false}
	outFail := roundTrip(t, respFail, func() protocol.Packet { return &packets.LoginPluginResponse{} }).(*packets.LoginPluginResponse)
	if outFail.Successful || len(outFail.Data) != 0 {
		t.Errorf("got %+v, want empty data and Successful=false", outFail)
	}
}
