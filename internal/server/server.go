package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/invoice-pdf/internal/model"
	"github.com/rezonia/invoice-pdf/internal/output"
	"github.com/rezonia/invoice-pdf/internal/renderer"
	"github.com/rezonia/invoice-pdf/internal/schema"
	"github.com/rezonia/invoice-pdf/internal/validator"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	LogoTimeout  time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	renderer *renderer.Renderer
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	logoTimeout := config.LogoTimeout
	if logoTimeout == 0 {
		logoTimeout = 15 * time.Second
	}

	s := &Server{
		config: config,
		router: router,
		renderer: renderer.New(
			renderer.WithHTTPClient(&http.Client{Timeout: logoTimeout}),
		),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/schema", s.handleSchema)
		v1.POST("/generate", s.handleGenerate)
		v1.POST("/validate", s.handleValidate)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSchema(c *gin.Context) {
	c.JSON(http.StatusOK, schema.Definition())
}

func (s *Server) handleGenerate(c *gin.Context) {
	req, ok := s.bindRequest(c)
	if !ok {
		return
	}

	inv, err := validator.Parse(req.Invoice)
	if err != nil {
		respondValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	var buf bytes.Buffer
	warnings, err := s.renderer.Render(ctx, inv, &buf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:    "document generation failed",
			Details:  err.Error(),
			Warnings: warnings,
		})
		return
	}

	if req.OutputPath != "" {
		if err := output.Write(req.OutputPath, buf.Bytes()); err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:    "failed to write document",
				Details:  err.Error(),
				Warnings: warnings,
			})
			return
		}
		c.JSON(http.StatusOK, GenerateResponse{
			Path:     req.OutputPath,
			Size:     buf.Len(),
			Warnings: warnings,
		})
		return
	}

	if len(warnings) > 0 {
		c.Header("X-Invoice-Warnings", strings.Join(warnings, "; "))
	}
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (s *Server) handleValidate(c *gin.Context) {
	req, ok := s.bindRequest(c)
	if !ok {
		return
	}

	_, err := validator.Parse(req.Invoice)
	if err != nil {
		var verrs model.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusOK, ValidationResponse{
				Valid:  false,
				Fields: verrs.Fields(),
				Errors: errorStrings(verrs),
			})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ValidationResponse{Valid: true})
}

// bindRequest reads the body as a tool request, accepting a bare invoice
// object for convenience.
func (s *Server) bindRequest(c *gin.Context) (*GenerateRequest, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return nil, false
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return nil, false
	}

	var req GenerateRequest
	if err := json.Unmarshal(body, &req); err != nil || req.Invoice == nil {
		req = GenerateRequest{Invoice: body}
	}
	return &req, true
}

func respondValidationError(c *gin.Context, err error) {
	var verrs model.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusUnprocessableEntity, ValidationResponse{
			Valid:  false,
			Fields: verrs.Fields(),
			Errors: errorStrings(verrs),
		})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
}

func errorStrings(verrs model.ValidationErrors) []string {
	msgs := make([]string, len(verrs))
	for i, ve := range verrs {
		msgs[i] = ve.Error()
	}
	return msgs
}
