package client

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"sync"
	"time"

	"github.com/mwath/mcli/protocol"
	"github.com/mwath/mcli/protocol/packets"
)

// DefaultWaitTimeout is the timeout QueryStatus, Connect and the login
// sequence pass to WaitFor when waiting for a specific reply.
const DefaultWaitTimeout = 30 * time.Second

// Client drives one connection to a Minecraft server: the handshake, an
// optional login, and afterwards Send/WaitFor against a single background
// read loop. A Client is not meant to be reused across connections; call
// New for each one.
type Client struct {
	logger *log.Logger
	debug  bool

	mu        sync.Mutex
	state     protocol.State
	connected bool

	conn       *protocol.Conn
	framer     *protocol.Framer
	registry   *protocol.Registry
	dispatcher *protocol.Dispatcher

	writeMu sync.Mutex

	readDone chan struct{}
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithLogger overrides the default stdout logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithDebug toggles verbose per-packet logging, matching the teacher's
// debugf convention.
func WithDebug(enabled bool) Option {
	return func(c *Client) { c.debug = enabled }
}

// New builds a Client with its own packet registry and dispatcher. Registry
// construction failing (a duplicate schema) is a programmer error, not a
// runtime condition, so New panics rather than returning an error for it.
func New(opts ...Option) *Client {
	reg, err := packets.NewDefaultRegistry()
	if err != nil {
		panic(fmt.Sprintf("client: default registry: %v", err))
	}

	c := &Client{
		logger:     log.New(os.Stdout, "[mcli] ", log.LstdFlags),
		state:      protocol.Handshaking,
		framer:     protocol.NewFramer(),
		registry:   reg,
		dispatcher: protocol.NewDispatcher(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) logf(format string, args ...any) {
	c.logger.Printf(format, args...)
}

func (c *Client) debugf(format string, args ...any) {
	if c.debug {
		c.logf(format, args...)
	}
}

func (c *Client) dial(address string) error {
	resolved, err := resolveAddress(address)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", address, err)
	}

	netConn, err := net.Dial("tcp", resolved)
	if err != nil {
		return fmt.Errorf("dial %s: %w", resolved, err)
	}

	c.mu.Lock()
	c.conn = protocol.NewConn(netConn)
	c.connected = true
	c.mu.Unlock()

	c.debugf("connected to %s", resolved)
	return nil
}

func (c *Client) setState(s protocol.State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Client) getState() protocol.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsConnected reports whether the underlying connection is open. It does
// not distinguish a clean disconnect from one still in progress.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Send encodes and writes p, validating that it belongs to the connection's
// current state before anything touches the wire.
func (c *Client) Send(p protocol.Packet) error {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return protocol.ErrDisconnected
	}
	state := c.state
	threshold := c.framer.CompressionThreshold
	conn := c.conn
	c.mu.Unlock()

	if p.State() != state {
		return fmt.Errorf("%w: packet is for %s but connection is in %s", protocol.ErrProtocolError, p.State(), state)
	}

	w := protocol.NewWriter()
	if err := w.WriteVarInt(p.ID()); err != nil {
		return err
	}
	if err := p.Write(w); err != nil {
		return err
	}

	frame, err := protocol.EncodeFrame(w.Bytes(), threshold)
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.debugf("-> send: state=%s id=0x%02X len=%d", p.State(), p.ID(), len(frame))
	_, err = conn.Write(frame)
	return err
}

// Disconnect closes the underlying connection and fails every pending
// WaitFor with ErrDisconnected.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return nil
	}
	c.connected = false
	conn := c.conn
	c.mu.Unlock()

	var closeErr error
	if conn != nil {
		closeErr = conn.Close()
	}
	if c.readDone != nil {
		<-c.readDone
	}
	c.dispatcher.Fail(protocol.ErrDisconnected)
	return closeErr
}

// WaitFor blocks until a packet of type PT is dispatched, timeout elapses,
// or the connection is torn down. It is a thin forward to the protocol
// package's dispatcher-level generic so callers only import client.
func WaitFor[T any, PT interface {
	*T
	protocol.Packet
}](c *Client, timeout time.Duration) (PT, error) {
	return protocol.WaitFor[T, PT](c.dispatcher, timeout)
}

var errAlreadyConnected = errors.New("client: already connected")
