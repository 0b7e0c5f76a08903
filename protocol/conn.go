package protocol

import (
	"net"

	"github.com/mwath/mcli/crypto"
)

// Conn wraps a net.Conn with optional AES-128/CFB8 encryption. It
// implements io.Reader and io.Writer, transparently decrypting/encrypting
// once Encryption().EnableEncryption has been called, so that Framer and everything
// above it always sees plaintext.
type Conn struct {
	conn       net.Conn
	encryption *crypto.Encryption
}

// NewConn wraps conn with encryption disabled.
func NewConn(conn net.Conn) *Conn {
	return &Conn{
		conn:       conn,
		encryption: crypto.NewEncryption(),
	}
}

// Read implements io.Reader. If encryption is enabled, the bytes read are
// decrypted in place, one byte of cipher state advanced per byte received,
// regardless of how the read is chunked.
func (c *Conn) Read(p []byte) (int, error) {
	n, err := c.conn.Read(p)
	if n > 0 && c.encryption.IsEnabled() {
		decrypted := c.encryption.Decrypt(p[:n])
		copy(p[:n], decrypted)
	}
	return n, err
}

// Write implements io.Writer. If encryption is enabled, data is encrypted
// before it reaches the socket.
func (c *Conn) Write(p []byte) (int, error) {
	data := p
	if c.encryption.IsEnabled() {
		data = c.encryption.Encrypt(p)
	}
	return c.conn.Write(data)
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// NetConn returns the underlying net.Conn.
func (c *Conn) NetConn() net.Conn { return c.conn }

// Encryption returns the encryption state for configuration during the
// handshake.
func (c *Conn) Encryption() *crypto.Encryption { return c.encryption }
