package gateway

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/hashicorp/go-hclog"
	"github.com/heysubinoy/kvgate/api/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

// DialFunc performs a single transport-level connect attempt.
type DialFunc func(ctx context.Context, target string) (*grpc.ClientConn, error)

// Option configures a Client.
type Option func(*Client)

// WithRetryPolicy overrides the default connect retry policy.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *Client) {
		c.policy = policy
	}
}

// WithDialTimeout bounds a single connect attempt.
func WithDialTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.dialTimeout = d
		}
	}
}

// WithDialOptions appends grpc dial options, e.g. transport credentials.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Client) {
		c.dialOpts = append(c.dialOpts, opts...)
	}
}

// WithDialFunc replaces the connect attempt.
func WithDialFunc(dial DialFunc) Option {
	return func(c *Client) {
		if dial != nil {
			c.dial = dial
		}
	}
}

// WithLogger sets the logger used for connection and call events.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records per-call outcome counters in set.
func WithMetrics(set *metrics.Set) Option {
	return func(c *Client) {
		c.metrics = set
	}
}

// Client is the gateway's connection to the Store Service. It connects once
// with bounded retries and is then shared by all concurrent calls.
type Client struct {
	endpoint    string
	policy      RetryPolicy
	dialTimeout time.Duration
	dialOpts    []grpc.DialOption
	dial        DialFunc
	sleep       func(ctx context.Context, d time.Duration) error
	logger      hclog.Logger
	metrics     *metrics.Set

	state atomic.Int32

	mu      sync.Mutex // serializes Connect and Close
	conn    *grpc.ClientConn
	kv      proto.KVClient
	failure *ConnectFailure
}

// New returns a disconnected Client for endpoint (host:port or a grpc target URI).
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:    endpoint,
		policy:      DefaultRetryPolicy,
		dialTimeout: DefaultDialTimeout,
		dialOpts:    []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())},
		sleep:       sleepContext,
		logger:      hclog.NewNullLogger(),
	}
	c.dial = c.dialReady

	for _, opt := range opts {
		opt(c)
	}

	if c.policy.MaxAttempts < 0 {
		c.policy.MaxAttempts = 0
	}
	if c.policy.BaseDelay <= 0 {
		c.policy.BaseDelay = DefaultBaseDelay
	}
	return c
}

// Endpoint returns the configured backend address.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// State returns the current connection state.
func (c *Client) State() ConnectionState {
	return ConnectionState(c.state.Load())
}

// Connect blocks until the backend accepts a connection or the retry budget is
// spent. A failed attempt sleeps base*2^attempt before the next one, as long as
// fewer than MaxAttempts retries have been made; the last failure returns a
// *ConnectFailure immediately. Both Connected and Failed are final.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.State() {
	case StateConnected:
		return nil
	case StateFailed:
		return c.failure
	}

	c.state.Store(int32(StateConnecting))
	c.logger.Info("connecting to backend", "endpoint", c.endpoint)

	attempt := 0
	for {
		conn, err := c.dial(ctx, c.endpoint)
		if err == nil {
			c.conn = conn
			c.kv = proto.NewKVClient(conn)
			c.state.Store(int32(StateConnected))
			c.logger.Info("connection established", "endpoint", c.endpoint, "attempts", attempt+1)
			return nil
		}

		if attempt < c.policy.MaxAttempts {
			delay := Delay(c.policy.BaseDelay, attempt)
			c.logger.Warn("failed to connect to backend, retrying", "attempt", attempt+1, "delay", delay, "error", err)
			if serr := c.sleep(ctx, delay); serr != nil {
				return c.fail(attempt+1, fmt.Errorf("%w (last error: %w)", serr, err))
			}
			attempt++
			continue
		}

		return c.fail(attempt+1, err)
	}
}

func (c *Client) fail(attempts int, err error) error {
	c.failure = &ConnectFailure{Endpoint: c.endpoint, Attempts: attempts, Err: err}
	c.state.Store(int32(StateFailed))
	c.logger.Error("failed to connect to backend", "endpoint", c.endpoint, "attempts", attempts, "error", err)
	return c.failure
}

// dialReady creates a client connection and waits until it is ready, failing
// on the first transient failure or after the dial timeout.
func (c *Client) dialReady(ctx context.Context, target string) (*grpc.ClientConn, error) {
	if !strings.Contains(target, "://") {
		target = "passthrough:///" + target
	}

	rec := &dialRecorder{}
	opts := append([]grpc.DialOption{grpc.WithContextDialer(rec.dial)}, c.dialOpts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.dialTimeout)
	defer cancel()

	conn.Connect()
	for {
		st := conn.GetState()
		switch st {
		case connectivity.Ready:
			return conn, nil
		case connectivity.TransientFailure, connectivity.Shutdown:
			conn.Close()
			if last := rec.last(); last != nil {
				return nil, fmt.Errorf("connection to %s is %s: %w", target, st, last)
			}
			return nil, fmt.Errorf("connection to %s is %s", target, st)
		}
		if !conn.WaitForStateChange(ctx, st) {
			conn.Close()
			if last := rec.last(); last != nil {
				return nil, fmt.Errorf("connection to %s: %w (last error: %w)", target, ctx.Err(), last)
			}
			return nil, fmt.Errorf("connection to %s: %w", target, ctx.Err())
		}
	}
}

// dialRecorder dials TCP and keeps the most recent transport error, which
// the ClientConn state alone does not expose. A dialer passed through
// WithDialOptions replaces it.
type dialRecorder struct {
	mu  sync.Mutex
	err error
}

func (r *dialRecorder) dial(ctx context.Context, addr string) (net.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		r.mu.Lock()
		r.err = err
		r.mu.Unlock()
	}
	return conn, err
}

func (r *dialRecorder) last() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// CallInsert validates and forwards an insert. Validation failures never reach
// the backend and individual calls are not retried.
func (c *Client) CallInsert(ctx context.Context, key, value string) error {
	const method = "InsertValue"

	if err := ValidateEntry(key, value); err != nil {
		c.logger.Warn("validation failed", "error", err)
		c.record(method, err)
		return err
	}

	kv, err := c.client(method)
	if err != nil {
		return err
	}

	_, err = kv.InsertValue(ctx, &proto.InsertValueRequest{Key: key, Value: value})
	err = translate(method, key, err)
	c.record(method, err)
	if err != nil {
		c.logger.Error("error returned from backend", "method", method, "error", err)
	}
	return err
}

// CallGet forwards a lookup. An absent key yields *NotFoundError, anything
// else the backend reports yields *RemoteError.
func (c *Client) CallGet(ctx context.Context, key string) (string, error) {
	const method = "GetValue"

	kv, err := c.client(method)
	if err != nil {
		return "", err
	}

	resp, err := kv.GetValue(ctx, &proto.GetValueRequest{Key: key})
	err = translate(method, key, err)
	c.record(method, err)
	if err != nil {
		if Classify(err) == OutcomeNotFound {
			c.logger.Debug("key not found", "key", key)
		} else {
			c.logger.Error("error returned from backend", "method", method, "error", err)
		}
		return "", err
	}
	return resp.GetValue(), nil
}

// Close releases the connection. The client cannot be reconnected.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Client) client(method string) (proto.KVClient, error) {
	if c.State() != StateConnected {
		err := &RemoteError{
			Method: method,
			Code:   codes.Unavailable,
			Err:    fmt.Errorf("backend connection is %s", c.State()),
		}
		c.record(method, err)
		return nil, err
	}
	return c.kv, nil
}

func (c *Client) record(method string, err error) {
	if c.metrics == nil {
		return
	}
	name := fmt.Sprintf(`gateway_rpc_calls_total{method=%q,outcome=%q}`, method, Classify(err))
	c.metrics.GetOrCreateCounter(name).Inc()
}

// ValidateEntry checks that key and value are non-empty after trimming.
func ValidateEntry(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return &ValidationError{Field: "key"}
	}
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: "value"}
	}
	return nil
}
