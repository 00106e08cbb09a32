package main

import (
	"errors"
	"net/http"
	"time"
)

type Server struct {
	blog *Blog
	mux  *http.ServeMux
}

func NewServer(blog *Blog) *Server {
	s := &Server{
		blog: blog,
		mux:  http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /blogs/{slug}", s.handlePost)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(sw, r)
	log.Request(r.Method, r.URL.Path, sw.status, time.Since(start))
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	page, err := s.blog.Render(slug)
	switch {
	case errors.Is(err, ErrNotFound):
		http.NotFound(w, r)
		return
	case errors.Is(err, ErrMalformedDocument):
		log.Err("Malformed document: %s\n", err)
		http.Error(w, "malformed document", http.StatusInternalServerError)
		return
	case err != nil:
		log.Err("Error rendering %s: %s\n", slug, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
