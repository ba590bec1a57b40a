package gateway

import (
	"bytes"
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/heysubinoy/kvgate/api/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

var errRefused = errors.New("connection refused")

// flakyDialer refuses the first `refusals` attempts.
type flakyDialer struct {
	refusals int
	attempts int
}

func (d *flakyDialer) dial(_ context.Context, target string) (*grpc.ClientConn, error) {
	d.attempts++
	if d.refusals < 0 || d.attempts <= d.refusals {
		return nil, errRefused
	}
	// NewClient does not connect, so this never touches the network.
	return grpc.NewClient("passthrough:///"+target, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func newRecordingClient(t *testing.T, dialer *flakyDialer, opts ...Option) (*Client, *[]time.Duration) {
	t.Helper()
	var delays []time.Duration
	c := New("backend:50051", append([]Option{WithDialFunc(dialer.dial)}, opts...)...)
	c.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, &delays
}

func TestConnectSucceedsOnSixthAttempt(t *testing.T) {
	dialer := &flakyDialer{refusals: 5}
	c, delays := newRecordingClient(t, dialer)

	require.NoError(t, c.Connect(context.Background()))

	assert.Equal(t, StateConnected, c.State())
	assert.Equal(t, 6, dialer.attempts)
	assert.Equal(t, []time.Duration{
		500 * time.Millisecond,
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
	}, *delays)
}

func TestConnectGivesUpAfterRetryBudget(t *testing.T) {
	dialer := &flakyDialer{refusals: -1}
	c, delays := newRecordingClient(t, dialer)

	err := c.Connect(context.Background())

	var failure *ConnectFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, 6, failure.Attempts)
	assert.Equal(t, "backend:50051", failure.Endpoint)
	assert.ErrorContains(t, failure, "connection refused")
	assert.Equal(t, 6, dialer.attempts)
	assert.Len(t, *delays, 5, "the final failure must not sleep")
	assert.Equal(t, StateFailed, c.State())

	// Failed is terminal: no further dials.
	require.ErrorAs(t, c.Connect(context.Background()), &failure)
	assert.Equal(t, 6, dialer.attempts)
}

func TestConnectHonoursConfiguredAttempts(t *testing.T) {
	dialer := &flakyDialer{refusals: -1}
	c, delays := newRecordingClient(t, dialer, WithRetryPolicy(RetryPolicy{MaxAttempts: 2, BaseDelay: 10 * time.Millisecond}))

	var failure *ConnectFailure
	require.ErrorAs(t, c.Connect(context.Background()), &failure)
	assert.Equal(t, 3, failure.Attempts)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, *delays)
}

func TestConnectZeroRetries(t *testing.T) {
	dialer := &flakyDialer{refusals: -1}
	c, delays := newRecordingClient(t, dialer, WithRetryPolicy(RetryPolicy{MaxAttempts: 0}))

	var failure *ConnectFailure
	require.ErrorAs(t, c.Connect(context.Background()), &failure)
	assert.Equal(t, 1, failure.Attempts)
	assert.Empty(t, *delays)
}

func TestConnectCancelledDuringBackoff(t *testing.T) {
	dialer := &flakyDialer{refusals: -1}
	c := New("backend:50051", WithDialFunc(dialer.dial))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var failure *ConnectFailure
	require.ErrorAs(t, c.Connect(ctx), &failure)
	assert.ErrorIs(t, failure, context.Canceled)
	assert.ErrorIs(t, failure, errRefused, "last dial error stays reachable")
	assert.Equal(t, 1, dialer.attempts)
	assert.Equal(t, StateFailed, c.State())
}

func TestConnectRefusedByClosedPort(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	c := New(addr,
		WithRetryPolicy(RetryPolicy{MaxAttempts: 1, BaseDelay: time.Millisecond}),
		WithDialTimeout(2*time.Second),
	)

	var failure *ConnectFailure
	require.ErrorAs(t, c.Connect(context.Background()), &failure)
	assert.Equal(t, 2, failure.Attempts)
	assert.ErrorContains(t, failure, "connection refused")

	var opErr *net.OpError
	assert.ErrorAs(t, failure, &opErr)
}

func TestDelay(t *testing.T) {
	for attempt, want := range []time.Duration{
		500 * time.Millisecond,
		time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
	} {
		assert.Equal(t, want, Delay(DefaultBaseDelay, attempt), "attempt %d", attempt)
	}
}

func TestDelaySaturates(t *testing.T) {
	prev := Delay(DefaultBaseDelay, 0)
	for attempt := 1; attempt < 100; attempt++ {
		d := Delay(DefaultBaseDelay, attempt)
		require.Positive(t, d, "attempt %d", attempt)
		require.GreaterOrEqual(t, d, prev, "attempt %d", attempt)
		prev = d
	}
	assert.Equal(t, maxDelay, Delay(DefaultBaseDelay, 35))
	assert.Equal(t, maxDelay, Delay(DefaultBaseDelay, 63))
	assert.Equal(t, time.Duration(1)<<62, Delay(time.Nanosecond, 62))
}

// stubKV is a programmable backend.
type stubKV struct {
	proto.UnimplementedKVServer

	mu      sync.Mutex
	inserts int
	insert  error
	get     func(key string) (string, error)
}

func (s *stubKV) InsertValue(_ context.Context, _ *proto.InsertValueRequest) (*proto.InsertValueResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserts++
	if s.insert != nil {
		return nil, s.insert
	}
	return &proto.InsertValueResponse{Success: true}, nil
}

func (s *stubKV) GetValue(_ context.Context, req *proto.GetValueRequest) (*proto.GetValueResponse, error) {
	v, err := s.get(req.GetKey())
	if err != nil {
		return nil, err
	}
	return &proto.GetValueResponse{Value: v}, nil
}

func (s *stubKV) insertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inserts
}

func connectToStub(t *testing.T, impl proto.KVServer, opts ...Option) *Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	proto.RegisterKVServer(srv, impl)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	dialer := grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
	c := New("passthrough:///bufnet", append([]Option{WithDialOptions(dialer)}, opts...)...)
	require.NoError(t, c.Connect(context.Background()))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCallGetTranslatesStatus(t *testing.T) {
	stub := &stubKV{get: func(key string) (string, error) {
		switch key {
		case "key1":
			return "value1", nil
		case "boom":
			return "", status.Error(codes.Internal, "exploded")
		default:
			return "", status.Errorf(codes.NotFound, "Value for key: %s not found.", key)
		}
	}}
	c := connectToStub(t, stub)
	ctx := context.Background()

	v, err := c.CallGet(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, "value1", v)

	_, err = c.CallGet(ctx, "missing")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Key)
	assert.Contains(t, notFound.Error(), "missing")
	assert.Equal(t, OutcomeNotFound, Classify(err))

	_, err = c.CallGet(ctx, "boom")
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, codes.Internal, remote.Code)
	assert.Equal(t, OutcomeRemote, Classify(err))
}

func TestCallInsertValidatesBeforeRPC(t *testing.T) {
	stub := &stubKV{}
	c := connectToStub(t, stub)
	ctx := context.Background()

	for _, tc := range []struct {
		key, value, field string
	}{
		{"", "v", "key"},
		{"  ", "v", "key"},
		{"k", "", "value"},
		{"k", "  ", "value"},
	} {
		err := c.CallInsert(ctx, tc.key, tc.value)
		var invalid *ValidationError
		require.ErrorAs(t, err, &invalid, "%q=%q", tc.key, tc.value)
		assert.Equal(t, tc.field, invalid.Field)
	}
	assert.Zero(t, stub.insertCount())

	require.NoError(t, c.CallInsert(ctx, "k", " v with spaces "))
	assert.Equal(t, 1, stub.insertCount())
}

func TestCallInsertRemoteFailure(t *testing.T) {
	stub := &stubKV{insert: status.Error(codes.Unavailable, "down")}
	set := metrics.NewSet()
	c := connectToStub(t, stub, WithMetrics(set))

	err := c.CallInsert(context.Background(), "k", "v")
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, codes.Unavailable, remote.Code)
	assert.Equal(t, 1, stub.insertCount(), "calls are not retried")

	var buf bytes.Buffer
	set.WritePrometheus(&buf)
	assert.Contains(t, buf.String(), `gateway_rpc_calls_total{method="InsertValue",outcome="remote_error"} 1`)
}

func TestCallsBeforeConnect(t *testing.T) {
	c := New("backend:50051")
	assert.Equal(t, StateDisconnected, c.State())

	_, err := c.CallGet(context.Background(), "k")
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, codes.Unavailable, remote.Code)

	// Validation still wins over connection state.
	err = c.CallInsert(context.Background(), "", "v")
	assert.Equal(t, OutcomeInvalid, Classify(err))
}
