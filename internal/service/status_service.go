package service

import (
	"context"
	"time"

	"github.com/Riaraujo/testecrud/internal/repository"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/Riaraujo/testecrud/pkg/logger"
	"go.uber.org/zap"
)

const (
	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
	DatabaseMock         = "mock"
)

// Status is the payload of GET /api/status.
type Status struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Driver    string    `json:"driver"`
	Timestamp time.Time `json:"timestamp"`
}

type StatusService struct {
	store   *repository.Store
	timeout time.Duration
}

func NewStatusService(store *repository.Store, timeout time.Duration) *StatusService {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &StatusService{store: store, timeout: timeout}
}

// Check reports the service online and probes the database. The memory
// driver always reports "mock".
func (s *StatusService) Check(ctx context.Context) Status {
	st := Status{
		Status:    "online",
		Database:  DatabaseConnected,
		Driver:    s.store.Driver,
		Timestamp: time.Now().UTC(),
	}
	if s.store.Driver == util.DriverMemory {
		st.Database = DatabaseMock
		return st
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.store.Pinger.Ping(ctx); err != nil {
		logger.Log.Warn("database ping failed", zap.String("driver", s.store.Driver), zap.Error(err))
		st.Database = DatabaseDisconnected
	}
	return st
}
