package server

import (
	"context"
	"log/slog"
	"time"

	"pomo-lab/contract"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const SessionsService = "pomo.Sessions"

var _ contract.Worker = (*HealthServer)(nil)

// HealthServer publishes the standard gRPC health protocol for the session
// service. Its Run loop refreshes the serving status from a readiness probe.
type HealthServer struct {
	log      *slog.Logger
	health   *health.Server
	ready    func() bool
	interval time.Duration
}

func NewHealthServer(log *slog.Logger, ready func() bool, interval time.Duration) *HealthServer {
	if interval <= 0 {
		interval = time.Second
	}
	h := health.NewServer()
	h.SetServingStatus(SessionsService, healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthServer{log: log, health: h, ready: ready, interval: interval}
}

func (s *HealthServer) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, s.health)
}

func (s *HealthServer) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.refresh()
	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Health reporter stopping")
			s.health.Shutdown()
			return nil
		case <-ticker.C:
			s.refresh()
		}
	}
}

func (s *HealthServer) refresh() {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if s.ready() {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(SessionsService, status)
	s.health.SetServingStatus("", status)
}
