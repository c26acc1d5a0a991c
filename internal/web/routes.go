package web

import (
	"io"
	"net/http"
	"strings"

	"github.com/kozaktomas/skin-advisor/internal/analyze"
	"github.com/kozaktomas/skin-advisor/internal/catalog"
	"github.com/kozaktomas/skin-advisor/internal/quiz"
	"github.com/kozaktomas/skin-advisor/internal/recommend"
	"github.com/kozaktomas/skin-advisor/internal/scan"
	"github.com/kozaktomas/skin-advisor/internal/web/handlers"
	"github.com/kozaktomas/skin-advisor/internal/web/static"
)

func (s *Server) setupRoutes(provider analyze.Provider, cat *catalog.Catalog) {
	rules := &s.config.Rules

	// Create handlers
	quizHandler := handlers.NewQuizHandler(quiz.NewService(rules))
	scanHandler := handlers.NewScanHandler(scan.NewScanner(provider, rules))
	recommendHandler := handlers.NewRecommendHandler(
		recommend.NewRecommender(cat, rules, s.config.Recommend.TopN),
	)

	// Health check
	s.router.Get("/health", handlers.HealthCheck)

	// Consultation flow
	s.router.Get("/quiz/start", quizHandler.Start)
	s.router.Post("/scan", scanHandler.Scan)
	s.router.Post("/recommend", recommendHandler.Recommend)

	// Serve static files for frontend (SPA)
	s.router.Get("/*", s.serveSPA)
}

// serveSPA serves the single-page application from the embedded assets.
func (s *Server) serveSPA(w http.ResponseWriter, r *http.Request) {
	fs := static.GetFileSystem()
	path := r.URL.Path
	if path == "/" {
		path = "/index.html"
	}

	f, err := fs.Open(path)
	if err != nil {
		// Unknown paths fall back to index.html so reloads inside the
		// client flow still land on the app.
		f, err = fs.Open("/index.html")
		if err != nil {
			http.NotFound(w, r)
			return
		}
		path = "/index.html"
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil || stat.IsDir() {
		http.NotFound(w, r)
		return
	}

	contentType := "application/octet-stream"
	switch {
	case strings.HasSuffix(path, ".html"):
		contentType = "text/html; charset=utf-8"
	case strings.HasSuffix(path, ".css"):
		contentType = "text/css; charset=utf-8"
	case strings.HasSuffix(path, ".js"):
		contentType = "application/javascript; charset=utf-8"
	case strings.HasSuffix(path, ".json"):
		contentType = "application/json"
	case strings.HasSuffix(path, ".svg"):
		contentType = "image/svg+xml"
	case strings.HasSuffix(path, ".png"):
		contentType = "image/png"
	case strings.HasSuffix(path, ".jpg"), strings.HasSuffix(path, ".jpeg"):
		contentType = "image/jpeg"
	case strings.HasSuffix(path, ".ico"):
		contentType = "image/x-icon"
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	io.Copy(w, f)
}
