package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/vaccine-scheduler/internal/config"
	"github.com/jakechorley/vaccine-scheduler/pkg/core/session"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg     *config.Config
	Store   db.Store
	Session *session.Session
	Logger  *zap.Logger
	Ctx     context.Context
}
