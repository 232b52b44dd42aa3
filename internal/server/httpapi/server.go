// Package httpapi exposes the account service over HTTP/JSON. It carries no
// domain logic: handlers decode requests, call the accounts service, and map
// the common error kinds onto status codes.
package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/linkhub/internal/logging"
	"github.com/dmitrijs2005/linkhub/internal/server/accounts"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address  string
	logger   logging.Logger
	accounts *accounts.Service
	app      *fiber.App
}

func NewServer(address string, l logging.Logger, as *accounts.Service) *Server {
	s := &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		accounts: as,
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.app.Use(s.countRequests)

	s.app.Get("/api/health", s.health)
	s.app.Post("/api/signup", s.signUp)
	s.app.Post("/api/signin", s.signIn)
	s.app.Post("/api/update-profile", s.updateProfile)
	s.app.Get("/api/profile", s.profile)

	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.app.Listen(s.address); err != nil {
		return err
	}

	return nil
}
