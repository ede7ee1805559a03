// Package ui serves a view tree as an interactive web page.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/leapstack-labs/analystdemo/internal/ui/notifier"
	"github.com/leapstack-labs/analystdemo/internal/ui/resources"
	"github.com/leapstack-labs/analystdemo/internal/ui/router"
	"github.com/leapstack-labs/analystdemo/pkg/core"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultShutdownTimeout bounds graceful shutdown when Config leaves it unset.
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultSessionSecret signs the tab cookie when Config leaves the secret empty.
	// The cookie only holds a section slug.
	DefaultSessionSecret = "analystdemo-dev-secret" //nolint:gosec
)

// Server is the main UI server.
type Server struct {
	tree            *core.ViewTree
	sessionStore    *sessions.CookieStore
	host            string
	port            int
	watch           bool
	dev             bool
	staticDir       string
	shutdownTimeout time.Duration
	logger          *slog.Logger
	notifier        *notifier.Notifier
}

// Config holds configuration for the UI server.
type Config struct {
	Tree            *core.ViewTree
	Host            string
	Port            int
	Watch           bool
	Dev             bool
	StaticDir       string
	SessionSecret   string
	ShutdownTimeout time.Duration
	Logger          *slog.Logger
}

// NewServer creates a new UI server instance.
func NewServer(cfg Config) *Server {
	secret := cfg.SessionSecret
	if secret == "" {
		secret = DefaultSessionSecret
	}
	sessionStore := sessions.NewCookieStore([]byte(secret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}

	return &Server{
		tree:            cfg.Tree,
		sessionStore:    sessionStore,
		host:            cfg.Host,
		port:            cfg.Port,
		watch:           cfg.Watch,
		dev:             cfg.Dev,
		staticDir:       cfg.StaticDir,
		shutdownTimeout: timeout,
		logger:          logger,
		notifier:        notifier.New(),
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// Handler builds the HTTP handler: middleware, static assets and page routes.
func (s *Server) Handler() (http.Handler, error) {
	static, err := resources.Handler(s.staticDir)
	if err != nil {
		return nil, err
	}

	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, router.Options{
		Tree:         s.tree,
		SessionStore: s.sessionStore,
		Notifier:     s.notifier,
		Static:       static,
		Logger:       s.logger,
		IsDev:        s.IsDev(),
	}); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}
	return r, nil
}

// Serve starts the UI server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.Addr(), err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on an existing listener until the context is cancelled.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	handler, err := s.Handler()
	if err != nil {
		_ = ln.Close()
		return err
	}

	s.logger.Info("starting UI server", "addr", "http://"+ln.Addr().String(), "sections", len(s.tree.Sections))

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if dir := s.watchDir(); dir != "" {
		eg.Go(func() error {
			return s.watchFiles(egctx, dir)
		})
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		s.notifier.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		s.logger.Debug("shutting down UI server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// IsDev reports whether live reload is enabled.
func (s *Server) IsDev() bool {
	return s.dev
}

// Notifier returns the server's notifier for live reload.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchDir picks the directory to watch: an explicit static dir, else the
// source tree in dev builds. Empty when watching is off or nothing is on disk.
func (s *Server) watchDir() string {
	if !s.watch || !s.dev {
		return ""
	}
	if s.staticDir != "" {
		return s.staticDir
	}
	return resources.SourceDir()
}

// watchFiles broadcasts a reload whenever an asset under dir changes.
func (s *Server) watchFiles(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirRecursive(watcher, dir); err != nil {
		s.logger.Error("failed to watch static directory", "dir", dir, "error", err)
		// Don't fail - continue without watching
		return nil
	}
	s.logger.Debug("watching static assets", "dir", dir)

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			rel, err := filepath.Rel(dir, event.Name)
			if err != nil {
				rel = event.Name
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				n := s.notifier.Broadcast(notifier.Event{Path: filepath.ToSlash(rel)})
				s.logger.Debug("asset changed", "file", rel, "clients", n)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
