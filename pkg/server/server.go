package server

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/htmldoom/el"
	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/pkg/element"
	"github.com/vango-dev/htmldoom/pkg/layout"
	"github.com/vango-dev/htmldoom/pkg/loader"
	"github.com/vango-dev/htmldoom/pkg/metrics"
	"github.com/vango-dev/htmldoom/pkg/render"
)

const (
	defaultTracerName   = "htmldoom"
	defaultPollInterval = 500 * time.Millisecond
	shutdownTimeout     = 5 * time.Second
)

// Config configures a preview server.
type Config struct {
	// FS holds the values directory.
	FS fs.FS

	// Dir is the values directory inside FS (default: ".").
	Dir string

	// Renderer renders pages. Defaults to render.Default().
	Renderer *render.Renderer

	// Renderers overrides the loader's per-extension renderers.
	Renderers map[string]loader.RenderFunc

	// Static doubles braces in text and raw values.
	Static bool

	// Reload enables the live reload endpoint, the injected reload script
	// and polling in Watch.
	Reload bool

	// PollInterval is how often Watch checks for changes (default: 500ms).
	PollInterval time.Duration

	// Metrics, when set, records requests and is served at /metrics.
	Metrics *metrics.Metrics

	// TracerName is the OpenTelemetry tracer name (default: "htmldoom").
	TracerName string

	// DisableTracing replaces the global tracer with a no-op one.
	DisableTracing bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Server serves every loaded value as a page.
type Server struct {
	config Config
	loader *loader.Loader
	hub    *reloadHub
	tracer trace.Tracer
	logger *slog.Logger
	router chi.Router

	mu     sync.RWMutex
	values loader.Values
	stamps map[string]time.Time
}

// New loads the values directory and builds the router.
func New(config Config) (*Server, error) {
	if config.Dir == "" {
		config.Dir = "."
	}
	if config.PollInterval <= 0 {
		config.PollInterval = defaultPollInterval
	}
	if config.TracerName == "" {
		config.TracerName = defaultTracerName
	}
	if config.Renderer == nil {
		config.Renderer = render.Default()
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	s := &Server{
		config: config,
		loader: &loader.Loader{
			FS:        config.FS,
			Renderer:  config.Renderer,
			Renderers: config.Renderers,
			Static:    config.Static,
			Logger:    config.Logger,
		},
		hub:    newReloadHub(),
		tracer: otel.Tracer(config.TracerName),
		logger: config.Logger,
	}
	if config.DisableTracing {
		s.tracer = noop.NewTracerProvider().Tracer(config.TracerName)
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	if s.config.Reload {
		r.Get(ReloadPath, s.hub.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(s.instrument)
		if s.config.Metrics != nil {
			r.Handle("/metrics", s.config.Metrics.Handler())
		}
		r.Get("/", s.serveIndex)
		r.Get("/*", s.servePage)
	})
	return r
}

// Handler returns the server's http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Values returns the currently loaded values.
func (s *Server) Values() loader.Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values
}

// Reload reloads the values directory. The previous values stay in place
// when loading fails.
func (s *Server) Reload() error {
	stamps, err := s.scan()
	if err != nil {
		return err
	}
	values, err := s.loader.LoadValues(s.config.Dir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values = values
	s.stamps = stamps
	s.mu.Unlock()

	s.logger.Info("values loaded", "dir", s.config.Dir, "pages", len(values.Paths()))
	return nil
}

// Watch polls the values directory until ctx is done. On change it reloads
// and tells connected browsers to refresh, or shows them the load error.
func (s *Server) Watch(ctx context.Context) error {
	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.poll()
		}
	}
}

// poll reloads when a modification time differs from the last load.
func (s *Server) poll() bool {
	stamps, err := s.scan()
	if err != nil {
		s.logger.Warn("watch failed", "error", err)
		return false
	}

	s.mu.RLock()
	changed := !sameStamps(s.stamps, stamps)
	s.mu.RUnlock()
	if !changed {
		return false
	}

	if err := s.Reload(); err != nil {
		s.logger.Error("reload failed", "error", err)
		s.mu.Lock()
		s.stamps = stamps
		s.mu.Unlock()
		s.hub.notifyError(err.Error())
		return true
	}
	s.logger.Info("reloaded", "clients", s.hub.count())
	s.hub.notifyReload()
	return true
}

func (s *Server) scan() (map[string]time.Time, error) {
	stamps := make(map[string]time.Time)
	err := fs.WalkDir(s.config.FS, s.config.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		stamps[p] = info.ModTime()
		return nil
	})
	if err != nil {
		return nil, errors.New("E045").WithDetail(s.config.Dir).Wrap(err)
	}
	return stamps, nil
}

func sameStamps(a, b map[string]time.Time) bool {
	if len(a) != len(b) {
		return false
	}
	for p, t := range a {
		if u, ok := b[p]; !ok || !u.Equal(t) {
			return false
		}
	}
	return true
}

// PagePath returns the URL path of a dotted value path.
func PagePath(dotted string) string {
	return "/" + strings.ReplaceAll(dotted, ".", "/")
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	paths := s.Values().Paths()
	setPage(r.Context(), "/")

	list := el.Ul().With(el.Range(paths, func(p string, _ int) element.Element {
		return el.Li().With(el.A(el.Href(PagePath(p))).With(p))
	}))
	page := layout.Base{
		Title: "htmldoom",
		Head:  []any{el.Meta(el.Charset("utf-8"))},
		Body:  []any{el.H1().With("Pages"), list},
	}
	html, err := page.Render(s.config.Renderer)
	if err != nil {
		s.logger.Error("index render failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.write(w, html)
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(chi.URLParam(r, "*"), ".html")
	dotted := strings.ReplaceAll(strings.Trim(name, "/"), "/", ".")

	v, ok := s.Values().Get(dotted)
	if !ok {
		http.NotFound(w, r)
		return
	}
	html, ok := v.(element.RawText)
	if !ok {
		// A directory: no page of its own.
		http.NotFound(w, r)
		return
	}
	setPage(r.Context(), dotted)
	s.write(w, string(html))
}

func (s *Server) write(w http.ResponseWriter, html string) {
	if s.config.Reload {
		html = injectReload(html)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func injectReload(html string) string {
	if i := strings.LastIndex(html, "</body>"); i >= 0 {
		return html[:i] + reloadScript + html[i:]
	}
	return html + reloadScript
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully. With Reload set it also runs Watch.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.config.Reload {
		go s.Watch(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving", "addr", addr, "reload", s.config.Reload)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.hub.close()
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
