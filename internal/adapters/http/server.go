package http

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Server runs the ops endpoints on their own listener.
type Server struct {
	app  *fiber.App
	addr string
	log  zerolog.Logger
}

func NewServer(addr string, handler *Handler, log zerolog.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "craftbot",
	})
	handler.SetupRoutes(app)
	return &Server{app: app, addr: addr, log: log.With().Str("component", "http").Logger()}
}

// Start binds the listener and serves in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", s.addr)
	}
	go func() {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("ops server started")
		if err := s.app.Listener(ln); err != nil {
			s.log.Error().Err(err).Msg("ops server stopped")
		}
	}()
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
