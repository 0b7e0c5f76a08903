package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mwath/mcli/auth"
	"github.com/mwath/mcli/crypto"
	"github.com/mwath/mcli/protocol"
	"github.com/mwath/mcli/protocol/packets"
)

// StatusResult is the decoded server-list-ping response: the raw status
// JSON and the measured round-trip latency.
type StatusResult struct {
	JSON string
	Ping time.Duration
}

// AutoProtocolVersion tells Connect to determine the protocol version by
// probing the server's status response first, instead of using a
// caller-supplied literal.
const AutoProtocolVersion int32 = -1

// ProtocolVersion extracts version.protocol from the status JSON.
func (r *StatusResult) ProtocolVersion() (int32, error) {
	m, err := r.StatusJSON()
	if err != nil {
		return 0, fmt.Errorf("parse status JSON: %w", err)
	}
	version, ok := m["version"].(map[string]any)
	if !ok {
		return 0, fmt.Errorf("%w: status response has no version object", protocol.ErrProtocolError)
	}
	protocolNum, ok := version["protocol"].(float64)
	if !ok {
		return 0, fmt.Errorf("%w: status response has no version.protocol", protocol.ErrProtocolError)
	}
	return int32(protocolNum), nil
}

// QueryStatus dials address, performs the status handshake, and returns the
// server's status JSON and measured ping. The connection is closed before
// returning, successfully or not.
func (c *Client) QueryStatus(address string) (*StatusResult, error) {
	if err := c.dial(address); err != nil {
		return nil, err
	}
	c.startReadLoop()
	defer c.Disconnect()

	host, port, err := splitHostPort(address)
	if err != nil {
		return nil, err
	}

	if err := c.Send(&packets.Handshake{
		ProtocolVersion: -1,
		ServerAddress:   host,
		ServerPort:      port,
		NextState:       packets.NextStateStatus,
	}); err != nil {
		return nil, err
	}
	c.setState(protocol.Status)

	if err := c.Send(&packets.StatusRequest{}); err != nil {
		return nil, err
	}
	statusPkt, err := WaitFor[packets.StatusResponse](c, DefaultWaitTimeout)
	if err != nil {
		return nil, err
	}

	payload := time.Now().UnixMilli()
	start := time.Now()
	if err := c.Send(&packets.PingRequest{Payload: payload}); err != nil {
		return nil, err
	}
	pongPkt, err := WaitFor[packets.PongResponse](c, DefaultWaitTimeout)
	if err != nil {
		return nil, err
	}
	ping := time.Since(start)
	if pongPkt.Payload != payload {
		return nil, fmt.Errorf("%w: ping payload mismatch", protocol.ErrProtocolError)
	}

	return &StatusResult{JSON: statusPkt.JSON, Ping: ping}, nil
}

// Connect dials address and logs in as username. If authenticator is nil,
// the server is assumed to be offline-mode and no encryption handshake is
// performed; LoginSuccess is awaited directly. If authenticator is
// non-nil, an EncryptionRequest is expected and answered per the online
// mode handshake before LoginSuccess.
//
// If protocolVersion is AutoProtocolVersion, Connect first performs a
// status probe (its own short-lived connection, per Client's single-use
// contract) and reads the server's advertised version.protocol before
// dialing for real.
func (c *Client) Connect(address string, protocolVersion int32, username string, authenticator auth.Authenticator) error {
	if c.IsConnected() {
		return errAlreadyConnected
	}

	if protocolVersion == AutoProtocolVersion {
		probe := New(WithLogger(c.logger), WithDebug(c.debug))
		status, err := probe.QueryStatus(address)
		if err != nil {
			return fmt.Errorf("auto version probe: %w", err)
		}
		protocolVersion, err = status.ProtocolVersion()
		if err != nil {
			return fmt.Errorf("auto version probe: %w", err)
		}
		c.debugf("auto-detected protocol version %d", protocolVersion)
	}

	if err := c.dial(address); err != nil {
		return err
	}
	c.startReadLoop()

	host, port, err := splitHostPort(address)
	if err != nil {
		c.Disconnect()
		return err
	}

	if err := c.Send(&packets.Handshake{
		ProtocolVersion: protocolVersion,
		ServerAddress:   host,
		ServerPort:      port,
		NextState:       packets.NextStateLogin,
	}); err != nil {
		c.Disconnect()
		return err
	}
	c.setState(protocol.Login)

	if err := c.Send(&packets.LoginStart{Name: username}); err != nil {
		c.Disconnect()
		return err
	}

	if err := c.login(authenticator); err != nil {
		c.Disconnect()
		return err
	}
	return nil
}

// login drives the rest of the login sequence: either the bare wait for
// LoginSuccess (offline mode), or the full online-mode encryption handshake
// first. SetCompression is applied as a side effect by the read loop
// whenever it arrives; in online mode, if compression is already active when
// EncryptionRequest arrives, login fails with ErrHandshakeOrder.
func (c *Client) login(authenticator auth.Authenticator) error {
	if authenticator == nil {
		_, err := WaitFor[packets.LoginSuccess](c, DefaultWaitTimeout)
		return err
	}

	if err := authenticator.Refresh(); err != nil {
		return fmt.Errorf("%w: %v", protocol.ErrAuthFailure, err)
	}

	encReq, err := WaitFor[packets.EncryptionRequest](c, DefaultWaitTimeout)
	if err != nil {
		return err
	}

	if c.framer.CompressionThreshold >= 0 {
		return fmt.Errorf("%w", protocol.ErrHandshakeOrder)
	}

	encryption := c.conn.Encryption()

	sharedSecret, err := encryption.GenerateSharedSecret()
	if err != nil {
		return fmt.Errorf("%w: %v", protocol.ErrEncryptionError, err)
	}

	encryptedSecret, err := encryption.EncryptWithPublicKey(encReq.PublicKey, sharedSecret)
	if err != nil {
		return fmt.Errorf("%w: %v", protocol.ErrEncryptionError, err)
	}
	encryptedToken, err := encryption.EncryptWithPublicKey(encReq.PublicKey, encReq.VerifyToken)
	if err != nil {
		return fmt.Errorf("%w: %v", protocol.ErrEncryptionError, err)
	}

	serverHash := crypto.ComputeServerHash(encReq.ServerID, sharedSecret, encReq.PublicKey)
	if err := authenticator.Join(serverHash); err != nil {
		return fmt.Errorf("%w: %v", protocol.ErrAuthFailure, err)
	}

	if err := c.Send(&packets.EncryptionResponse{
		SharedSecret: encryptedSecret,
		VerifyToken:  encryptedToken,
	}); err != nil {
		return err
	}

	// Encryption is enabled on both directions immediately after the
	// response bytes are enqueued, before LoginSuccess arrives.
	if err := encryption.EnableEncryption(); err != nil {
		return fmt.Errorf("%w: %v", protocol.ErrEncryptionError, err)
	}

	_, err = WaitFor[packets.LoginSuccess](c, DefaultWaitTimeout)
	return err
}

// StatusJSON is a convenience for callers that only need the raw status map
// rather than the JSON string QueryStatus returns.
func (r *StatusResult) StatusJSON() (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(r.JSON), &m); err != nil {
		return nil, err
	}
	return m, nil
}
