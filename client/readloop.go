package client

import (
	"errors"
	"fmt"
	"io"

	"github.com/mwath/mcli/protocol"
	"github.com/mwath/mcli/protocol/packets"
)

// startReadLoop spawns the single goroutine that owns the Framer and the
// connection's read side for the lifetime of the connection. It is the only
// goroutine that calls Framer.Feed or Dispatcher.Dispatch; every other
// goroutine only ever calls WaitFor or Send.
func (c *Client) startReadLoop() {
	c.readDone = make(chan struct{})
	go func() {
		defer close(c.readDone)
		c.readLoop()
	}()
}

func (c *Client) readLoop() {
	buf := make([]byte, 4096)

	for {
		c.mu.Lock()
		conn := c.conn
		connected := c.connected
		c.mu.Unlock()
		if !connected || conn == nil {
			return
		}

		n, err := conn.Read(buf)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.debugf("<- recv: read error: %v", err)
			}
			c.teardown()
			return
		}

		if err := c.drain(buf[:n]); err != nil {
			c.debugf("<- recv: frame error: %v", err)
			c.teardown()
			return
		}
	}
}

// drain feeds a chunk to the Framer and processes every frame it completes,
// applying SetCompression's side effect between frames so a packet
// following it in the same chunk is parsed under the new threshold.
func (c *Client) drain(chunk []byte) error {
	first := true
	for {
		var (
			frame Frame
			ok    bool
			err   error
		)
		if first {
			frame, ok, err = c.framer.Feed(chunk)
			first = false
		} else {
			frame, ok, err = c.framer.Feed(nil)
		}
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := c.handleFrame(frame); err != nil {
			return err
		}
	}
}

// Frame aliases protocol.Frame for the declarations in drain.
type Frame = protocol.Frame

// handleFrame decodes and dispatches one frame. An unknown packet id is
// logged and skipped; a field decode error is returned so the read loop
// tears the connection down.
func (c *Client) handleFrame(frame protocol.Frame) error {
	state := c.getState()

	p, found := c.registry.Lookup(state, protocol.Clientbound, frame.PacketID)
	if !found {
		c.debugf("<- recv: unknown packet state=%s id=0x%02X", state, frame.PacketID)
		return nil
	}

	r := protocol.NewReader(frame.Data)
	if err := p.Read(r); err != nil {
		return fmt.Errorf("decode state=%s id=0x%02X: %w", state, frame.PacketID, err)
	}
	c.debugf("<- recv: state=%s id=0x%02X %T", state, frame.PacketID, p)

	switch pkt := p.(type) {
	case *packets.SetCompression:
		c.mu.Lock()
		c.framer.CompressionThreshold = int(pkt.Threshold)
		c.mu.Unlock()
	case *packets.LoginSuccess:
		c.setState(protocol.Play)
	}

	c.dispatcher.Dispatch(p)
	return nil
}

func (c *Client) teardown() {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return
	}
	c.connected = false
	conn := c.conn
	c.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
	c.dispatcher.Fail(protocol.ErrDisconnected)
}
