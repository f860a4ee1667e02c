package server

import (
	"context"
	"log/slog"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func TestHealthServer_Follows_Readiness(t *testing.T) {
	req := require.New(t)
	var ready atomic.Bool
	hs := NewHealthServer(logs.GetLoggerFromLevel(slog.LevelDebug), ready.Load, 5*time.Millisecond)

	listener := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	hs.Register(s)
	go func() { _ = s.Serve(listener) }()
	defer s.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	req.NoError(err)
	defer func() { _ = conn.Close() }()
	client := healthpb.NewHealthClient(conn)

	status := func() healthpb.HealthCheckResponse_ServingStatus {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: SessionsService})
		if err != nil {
			return healthpb.HealthCheckResponse_UNKNOWN
		}
		return resp.Status
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hs.Run(ctx) }()

	// Given the orchestrator is not ready
	req.Eventually(func() bool { return status() == healthpb.HealthCheckResponse_NOT_SERVING },
		time.Second, 5*time.Millisecond)

	// When it becomes ready
	ready.Store(true)

	// Then
	req.Eventually(func() bool { return status() == healthpb.HealthCheckResponse_SERVING },
		time.Second, 5*time.Millisecond)

	// When the reporter stops, the service is no longer served
	cancel()
	req.NoError(<-done)
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, status())
}
