package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	handlers "github.com/ctxos/desktop/backend/internal/api/http"
	"github.com/ctxos/desktop/backend/internal/api/middleware"
	"github.com/ctxos/desktop/backend/internal/api/ws"
	"github.com/ctxos/desktop/backend/internal/domain/palette"
	"github.com/ctxos/desktop/backend/internal/domain/registry"
	"github.com/ctxos/desktop/backend/internal/domain/shell"
	"github.com/ctxos/desktop/backend/internal/domain/vfs"
	"github.com/ctxos/desktop/backend/internal/domain/viewer"
	"github.com/ctxos/desktop/backend/internal/domain/window"
	"github.com/ctxos/desktop/backend/internal/infrastructure/config"
	"github.com/ctxos/desktop/backend/internal/infrastructure/logging"
	"github.com/ctxos/desktop/backend/internal/infrastructure/monitoring"
	"github.com/ctxos/desktop/backend/internal/infrastructure/tracing"
	"github.com/ctxos/desktop/backend/internal/shared/utils"
	"github.com/ctxos/desktop/backend/internal/shared/types"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	http    *http.Server
	apps    *registry.Catalog
	tree    *vfs.Tree
	windows *window.Manager
	shell   *shell.State
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logger := logging.NewFromSettings(cfg.Logging.Level, cfg.Logging.Development)

	logger.Info("Initializing ctxos desktop server",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("tree", treeSource(cfg.Desktop.TreePath)),
	)

	// Metrics first, the window manager reports into them
	metrics := monitoring.NewMetrics()

	tree, err := loadTree(cfg.Desktop.TreePath)
	if err != nil {
		return nil, err
	}
	logger.Info("File tree loaded",
		zap.String("root", tree.RootName()),
		zap.Int("files", len(tree.Files())),
	)

	apps := registry.Default()

	windows := window.NewManager(apps, tree, window.Options{
		ZBase:       cfg.Desktop.ZBase,
		DefaultSize: types.Size{Width: cfg.Desktop.WindowWidth, Height: cfg.Desktop.WindowHeight},
	}).
		WithLogger(logger.Component("window")).
		WithMetrics(metrics)

	state := shell.NewState(logger.Component("shell"))
	pal := palette.New(apps, tree, windows, logger.Component("palette")).WithCloser(state)
	renderer := viewer.NewRenderer(cfg.Desktop.ViewerStyle)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracing.New("desktop", logger.Component("trace"))))
	router.Use(middleware.RequestLogger(logger.Component("http")))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.CORSConfigFor(cfg.Server.CORSOrigins)))
	router.Use(middleware.BodyLimit(utils.MaxJSONSize))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		limits := middleware.DefaultRateLimitConfig()
		limits.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		limits.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(limits))
	}

	handlers.NewHandlers(apps, windows, tree, renderer, state, pal, metrics).Register(router)

	// WebSocket
	router.GET("/stream", ws.NewHandler(windows, metrics, logger.Component("ws")).HandleConnection)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		apps:    apps,
		tree:    tree,
		windows: windows,
		shell:   state,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// Router returns the gin engine
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Windows returns the window manager
func (s *Server) Windows() *window.Manager {
	return s.windows
}

// Run serves HTTP until Shutdown is called
func (s *Server) Run() error {
	addr := s.http.Addr
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	defer func() { _ = s.logger.Sync() }()

	s.logger.Info("Shutting down HTTP server")
	return s.http.Shutdown(ctx)
}

func loadTree(path string) (*vfs.Tree, error) {
	if path == "" {
		return vfs.Default(), nil
	}
	tree, err := vfs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load file tree: %w", err)
	}
	return tree, nil
}

func treeSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
