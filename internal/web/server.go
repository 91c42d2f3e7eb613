// Package web serves the operator page: pipelines, libraries and their variables with
// forms to edit a variable, queue a run and clone a library from a template.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tmeckel/azdo-envmgr/internal/config"
	"github.com/tmeckel/azdo-envmgr/internal/envmgr"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

//go:embed templates/*.html
var templatesFS embed.FS

type Server struct {
	cfg     config.Config
	manager envmgr.Manager
	engine  *gin.Engine
}

// NewServer wires the routes. The manager stays owned by the caller.
func NewServer(cfg config.Config, manager envmgr.Manager) *Server {
	s := &Server{
		cfg:     cfg,
		manager: manager,
	}

	engine := gin.New()
	engine.Use(requestLogger(zap.L()), gin.Recovery())
	engine.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")))

	engine.GET("/", s.index)
	engine.GET("/healthz", s.health)
	engine.POST("/variables", s.updateVariable)
	engine.POST("/pipelines/:id/run", s.runPipeline)
	engine.POST("/libraries/clone", s.cloneLibrary)

	s.engine = engine
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve answers requests on l until ctx is done, then drains in-flight requests.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(l)
	}()
	zap.L().Info("web server listening", zap.String("address", l.Addr().String()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.L().Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe listens on the configured address.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = s.cfg.Listen()
	}
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}
