package gateway

import (
	"context"
	"log/slog"
	"time"

	"medigraph/app/config"
	"medigraph/app/service/pipeline"
	"medigraph/app/service/session"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
)

var _ do.Shutdownable = (*Service)(nil)

// Asker answers a single question. Satisfied by the pipeline service,
// stubbed in tests.
type Asker interface {
	Ask(ctx context.Context, question string) pipeline.Answer
}

type Service struct {
	cfg         *config.Config
	app         *fiber.App
	pipelineSvc Asker
	sessionSvc  *session.Store
}

func New(di *do.Injector) (*Service, error) {
	return NewService(
		do.MustInvoke[*config.Config](di),
		do.MustInvoke[*pipeline.Service](di),
		do.MustInvoke[*session.Store](di),
	), nil
}

func NewService(cfg *config.Config, pipelineSvc Asker, sessionSvc *session.Store) *Service {
	s := &Service{
		cfg:         cfg,
		pipelineSvc: pipelineSvc,
		sessionSvc:  sessionSvc,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           time.Minute,
		WriteTimeout:          2 * time.Minute,
	})

	app.Post("/query", s.handleQuery)

	app.Get("/sessions", s.handleListSessions)
	app.Post("/sessions", s.handleCreateSession)
	app.Get("/sessions/:id", s.handleGetSession)
	app.Post("/sessions/:id/turns", s.handleAppendTurn)
	app.Delete("/sessions/:id", s.handleDeleteSession)

	s.app = app

	return s
}

func (s *Service) Run() error {
	slog.Info("HTTP server listening", "addr", s.cfg.Server.Addr)

	return s.app.Listen(s.cfg.Server.Addr)
}

func (s *Service) Shutdown() error {
	return s.app.Shutdown()
}
