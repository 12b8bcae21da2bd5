package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"github.com/gbistila/bidupgradestest/internal/config"
	"github.com/gbistila/bidupgradestest/pkg/present"
)

//go:embed templates/*.html
var templateFS embed.FS

const requestIDHeader = "X-Request-ID"

// Server is the local web front end for the bid calculator.
type Server struct {
	cfg       config.Config
	presenter *present.Presenter
	markdown  goldmark.Markdown
	log       *zap.Logger
	engine    *gin.Engine
}

// New builds the server and its routes. Nothing listens until Start.
func New(cfg config.Config, log *zap.Logger) (*Server, error) {
	p, err := present.NewForLocale(cfg.Locale)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:       cfg,
		presenter: p,
		markdown:  goldmark.New(),
		log:       log,
		engine:    gin.New(),
	}
	s.engine.SetHTMLTemplate(tmpl)
	s.engine.Use(gin.Recovery(), s.requestID(), s.accessLog())

	s.engine.GET("/", s.handleIndex)
	s.engine.POST("/calculate", s.handleCalculate)
	s.engine.GET("/api/bid", s.handleBid)
	s.engine.GET("/healthz", s.handleHealth)

	return s, nil
}

// Handler exposes the routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start launches the HTTP server and blocks.
func (s *Server) Start() error {
	addr := s.cfg.Addr()
	s.log.Info("server.starting", zap.String("url", "http://"+addr))

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http.request",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// renderHandoff turns the plain-text handoff, which is already a markdown
// list, into HTML.
func (s *Server) renderHandoff(text string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
