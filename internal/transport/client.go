package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ErrClosed is reported to OnClose when Close ends the connection.
var ErrClosed = errors.New("transport: client closed")

// Client owns one receive-only WebSocket connection to a frame source.
// It is used once: after it reaches Disconnected it never reconnects.
type Client struct {
	endpoint string
	handler  Handler
	dialer   *websocket.Dialer
	logger   *slog.Logger
	readLim  int64

	mu      sync.Mutex
	state   State
	conn    *websocket.Conn
	started bool
	closed  bool
	err     error
	cancel  context.CancelFunc
	done    chan struct{}
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithHandshakeTimeout bounds the opening handshake.
func WithHandshakeTimeout(d time.Duration) Option {
	return func(c *Client) {
		dialer := *c.dialer
		dialer.HandshakeTimeout = d
		c.dialer = &dialer
	}
}

// WithReadLimit caps the size of a single inbound message in bytes.
func WithReadLimit(n int64) Option {
	return func(c *Client) { c.readLim = n }
}

// NewClient creates a client for endpoint. Nothing is dialed until Connect.
func NewClient(endpoint string, handler Handler, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		handler:  handler,
		dialer:   websocket.DefaultDialer,
		logger:   slog.Default(),
		state:    Connecting,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL the client dials.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Done is closed once the client reaches Disconnected and OnClose returned.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Err returns the reason the connection ended, or nil while it is live.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Connect starts dialing in the background and returns immediately. Dial
// failures are reported through OnClose, never returned. Calling Connect
// more than once has no effect.
func (c *Client) Connect(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	if c.closed {
		// Close already reported the disconnect.
		c.mu.Unlock()
		return
	}
	ctx, c.cancel = context.WithCancel(ctx)
	c.mu.Unlock()

	go c.run(ctx)
}

// Close ends the connection. OnClose fires with ErrClosed unless the
// connection had already ended.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	conn := c.conn
	cancel := c.cancel
	started := c.started
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		return conn.Close()
	}
	if !started {
		c.finish(ErrClosed)
	}
	return nil
}

func (c *Client) run(ctx context.Context) {
	conn, _, err := c.dialer.DialContext(ctx, c.endpoint, nil)
	if err != nil {
		if c.isClosed() {
			err = ErrClosed
		}
		c.finish(fmt.Errorf("dial %s: %w", c.endpoint, err))
		return
	}
	if c.readLim > 0 {
		conn.SetReadLimit(c.readLim)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		conn.Close()
		c.finish(ErrClosed)
		return
	}
	c.conn = conn
	c.state, _ = next(c.state, eventOpen)
	c.mu.Unlock()

	c.logger.Info("connected", "endpoint", c.endpoint)
	if c.handler.OnOpen != nil {
		c.handler.OnOpen()
	}

	c.finish(c.readLoop(conn))
}

func (c *Client) readLoop(conn *websocket.Conn) error {
	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if c.isClosed() {
				return ErrClosed
			}
			return fmt.Errorf("read: %w", err)
		}
		if c.handler.OnMessage != nil {
			c.handler.OnMessage(data)
		}
	}
}

// finish moves the client to Disconnected and fires OnClose once.
func (c *Client) finish(err error) {
	c.mu.Lock()
	s, ok := next(c.state, eventClose)
	if !ok {
		c.mu.Unlock()
		return
	}
	c.state = s
	c.err = err
	c.conn = nil
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	if errors.Is(err, ErrClosed) {
		c.logger.Info("disconnected", "endpoint", c.endpoint)
	} else {
		c.logger.Warn("disconnected", "endpoint", c.endpoint, "error", err)
	}
	if c.handler.OnClose != nil {
		c.handler.OnClose(err)
	}
	close(c.done)
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
