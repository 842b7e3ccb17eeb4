package controllers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"idcard/models"
)

// EmployeeDirectory is the lookup surface the handlers need.
type EmployeeDirectory interface {
	Authenticate(ctx context.Context, username, password string) (models.Profile, error)
	Find(ctx context.Context, username string) (models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
}

type Handler struct {
	dir    EmployeeDirectory
	logger *zap.Logger
	now    func() time.Time
}

func NewHandler(dir EmployeeDirectory, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{dir: dir, logger: logger, now: time.Now}
}
