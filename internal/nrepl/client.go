package nrepl

import (
	"bufio"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/replkit/replctl/internal/bencode"
)

// Client owns one TCP connection to an nREPL server. The protocol carries a
// single outstanding request per connection; concurrent Do calls on the same
// Client must be serialized by the caller.
type Client struct {
	conn net.Conn
	dec  *bencode.Decoder
	cfg  Config
	log  zerolog.Logger
}

// Connect dials addr with the configured connect timeout and returns a
// client in blocking mode. Read and write deadlines are applied per
// operation, not here.
func Connect(addr string, cfg Config) (*Client, error) {
	cfg = cfg.WithDefaults()
	dialer := net.Dialer{Timeout: cfg.ConnectTimeout}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrConnectionLost, addr, err)
	}
	return NewClient(conn, cfg), nil
}

// NewClient wraps an established connection. Useful for tests that pipe a
// scripted server behind the client.
func NewClient(conn net.Conn, cfg Config) *Client {
	return &Client{
		conn: conn,
		dec:  bencode.NewDecoder(conn),
		cfg:  cfg.WithDefaults(),
		log:  log.With().Str("component", "nrepl").Logger(),
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Do sends one request and reads responses until the terminal message is
// seen, returning them in arrival order. Any failure discards the partial
// sequence and leaves the connection unusable: the stream position can no
// longer be trusted, so callers should close and reconnect.
func (c *Client) Do(req *Request) ([]Response, error) {
	encoded, err := req.Bytes()
	if err != nil {
		// Encode failures surface before any byte hits the wire.
		return nil, err
	}

	if err := c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout)); err != nil {
		return nil, fmt.Errorf("%w: set write deadline: %v", ErrConnectionLost, err)
	}
	w := bufio.NewWriter(c.conn)
	if _, err := w.Write(encoded); err != nil {
		return nil, fmt.Errorf("%w: write request: %v", ErrConnectionLost, err)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("%w: flush request: %v", ErrConnectionLost, err)
	}
	c.log.Debug().Str("op", req.Name).Int("bytes", len(encoded)).Msg("request sent")

	var resps []Response
	for {
		resp, err := c.readResponse()
		if err != nil {
			return nil, err
		}
		resps = append(resps, resp)
		if resp.IsFinal() {
			c.log.Debug().Str("op", req.Name).Int("messages", len(resps)).Msg("sequence complete")
			return resps, nil
		}
	}
}

func (c *Client) readResponse() (Response, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(c.cfg.ReadTimeout)); err != nil {
		return nil, fmt.Errorf("%w: set read deadline: %v", ErrConnectionLost, err)
	}
	obj, err := c.dec.ReadObject()
	if err != nil {
		if bencode.IsSyntax(err) {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrConnectionLost, err)
	}
	return ParseResponse(obj)
}
