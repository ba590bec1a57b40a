package api

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/VictoriaMetrics/metrics"
	"github.com/heysubinoy/kvgate/internal/gateway"
	"github.com/heysubinoy/kvgate/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// TestGatewayAgainstBackend runs both tiers in process: HTTP gateway,
// gateway client, gRPC backend and an instrumented MemStore.
func TestGatewayAgainstBackend(t *testing.T) {
	set := metrics.NewSet()
	backendStore := store.NewInstrumentedStore(store.NewMemStore(), set)

	lis := bufconnListener(t, NewGRPCServer(backendStore, nil))

	client := gateway.New("bufnet",
		gateway.WithDialOptions(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		})),
		gateway.WithMetrics(set),
	)
	require.NoError(t, client.Connect(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	assert.Equal(t, gateway.StateConnected, client.State())

	srv := httptest.NewServer(NewServer(client, nil).Handler())
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(`{"key":"key1","value":"value1"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/key1")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "value1", string(body))

	resp, err = http.Get(srv.URL + "/missing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/", "application/json", strings.NewReader(`{"key":"","value":"value1"}`))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "'key' field can't be empty.")

	snap := backendStore.GetMetrics()
	assert.Equal(t, uint64(1), snap.InsertCount)
	assert.Equal(t, uint64(2), snap.GetCount)
	assert.Equal(t, uint64(1), snap.GetMissCount)

	rec := httptest.NewRecorder()
	MetricsHandler(set, false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	out := rec.Body.String()
	assert.Contains(t, out, `gateway_rpc_calls_total{method="GetValue",outcome="not_found"} 1`)
	assert.Contains(t, out, `gateway_rpc_calls_total{method="InsertValue",outcome="invalid"} 1`)
}
