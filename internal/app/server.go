package app

import (
	"bytes"
	"log"
	"net/http"
	"strconv"
)

// Server wires the landing page handler, renderer and loader together.
type Server struct {
	cfg      Config
	site     Site
	loader   *Loader
	renderer *Renderer
	mux      *http.ServeMux
}

// NewServer constructs an HTTP handler serving the landing page at the site root.
func NewServer(cfg Config, loader *Loader) (*Server, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	srv := &Server{
		cfg:      cfg,
		site:     TerraFinance,
		loader:   loader,
		renderer: renderer,
		mux:      http.NewServeMux(),
	}

	srv.mux.HandleFunc("/", srv.handleIndex)

	return srv, nil
}

// ServeHTTP satisfies http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := s.loader.Load(r.Context())
	if err != nil {
		log.Printf("load home: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	result.Now = result.Now.In(s.cfg.Location())

	page, err := NewPage(s.site, result, r.Header.Get("Accept-Language"))
	if err != nil {
		log.Printf("build home: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, page); err != nil {
		log.Printf("render home: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Add("Vary", "Accept-Language")
	if r.Method == http.MethodHead {
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("write home: %v", err)
	}
}
