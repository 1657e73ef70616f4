package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"speedread/internal/domain"
)

//go:embed templates/index.html
var templateFS embed.FS

// Options configures a Server.
type Options struct {
	Converter   domain.Converter
	Flash       *Flasher
	Log         zerolog.Logger
	MaxUploadMB int64 // defaults to 100
}

// Server is the converter's HTTP front end.
type Server struct {
	conv     domain.Converter
	flash    *Flasher
	log      zerolog.Logger
	maxBytes int64
	maxMB    int64
	index    *template.Template
}

// New parses the embedded templates and returns a Server.
func New(opts Options) (*Server, error) {
	if opts.Converter == nil || opts.Flash == nil {
		return nil, errors.New("web: converter and flasher are required")
	}
	if opts.MaxUploadMB <= 0 {
		opts.MaxUploadMB = 100
	}
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &Server{
		conv:     opts.Converter,
		flash:    opts.Flash,
		log:      opts.Log,
		maxBytes: opts.MaxUploadMB << 20,
		maxMB:    opts.MaxUploadMB,
		index:    tmpl,
	}, nil
}

// Handler returns the routed, logged handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /convert", s.handleConvert)
	return accessLog(s.log, mux)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run over an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
