// Package spectate serves a headless, autopilot-driven table over HTTP. The
// current state is available as JSON snapshots, plain-text frames, and a
// WebSocket stream of every frame.
package spectate

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/tui-pinball/internal/storage"
)

// Frame size limits for /frame.
const (
	defaultFrameW = 80
	defaultFrameH = 40
	maxFrameSide  = 400
)

// ServerConfig configures the spectator HTTP server.
type ServerConfig struct {
	Address string
	Debug   bool // gin debug mode and per-request logging
}

// DefaultServerConfig returns stock settings.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{Address: ":8089"}
}

// Server exposes a Runner over HTTP and WebSocket.
type Server struct {
	cfg     ServerConfig
	runner  *Runner
	hub     *Hub
	store   *storage.Store
	logger  *log.Logger
	engine  *gin.Engine
	started time.Time
}

// NewServer wires the routes. store may be nil, in which case /scores
// reports 503.
func NewServer(cfg ServerConfig, runner *Runner, hub *Hub, store *storage.Store, logger *log.Logger) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		runner:  runner,
		hub:     hub,
		store:   store,
		logger:  logger,
		engine:  gin.New(),
		started: time.Now(),
	}

	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/snapshot", s.handleSnapshot)
	s.engine.GET("/table", s.handleTable)
	s.engine.GET("/frame", s.handleFrame)
	s.engine.GET("/scores/:game", s.handleScores)
	s.engine.GET("/ws", func(c *gin.Context) {
		s.hub.Serve(c.Writer, c.Request)
	})
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// requestLogger logs each request through the shared logger.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if !s.cfg.Debug {
			return
		}
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"game":       s.runner.GameID(),
		"games":      s.runner.Games(),
		"spectators": s.hub.Count(),
		"uptime":     time.Since(s.started).Truncate(time.Second).String(),
	})
}

func (s *Server) handleSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, s.runner.Snapshot())
}

func (s *Server) handleTable(c *gin.Context) {
	c.JSON(http.StatusOK, s.runner.Layout())
}

func (s *Server) handleFrame(c *gin.Context) {
	w, errW := sizeParam(c, "w", defaultFrameW)
	h, errH := sizeParam(c, "h", defaultFrameH)
	if err := errors.Join(errW, errH); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, s.runner.Frame(w, h))
}

func (s *Server) handleScores(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scores database unavailable"})
		return
	}

	limit := 10
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	gameID := c.Param("game")
	scores, err := s.store.TopScores(gameID, limit)
	if err != nil {
		s.logger.Error("cannot load scores", "game", gameID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot load scores"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": gameID, "scores": scores})
}

// sizeParam reads a positive screen dimension from the query string.
func sizeParam(c *gin.Context, name string, def int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || n > maxFrameSide {
		return 0, errors.New(name + " must be between 1 and " + strconv.Itoa(maxFrameSide))
	}
	return n, nil
}

// ListenAndServe runs the game loop and the HTTP server until ctx is
// cancelled, then shuts both down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runDone := make(chan error, 1)
	go func() {
		runDone <- s.runner.Run(ctx)
	}()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("spectator server listening", "address", s.cfg.Address, "game", s.runner.GameID())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	cancel()
	s.hub.Close()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	<-runDone
	return err
}
