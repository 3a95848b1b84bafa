package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danmuck/bufrkit/internal/codes"
	"github.com/danmuck/bufrkit/internal/descriptor"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type descriptorResponse struct {
	*descriptor.Descriptor
	Marker bool `json:"marker"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.appeared).String(),
			"service": s.cfg.Name,
		})
	})

	s.router.GET("/descriptors/:code", s.getDescriptor)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *Server) getDescriptor(c *gin.Context) {
	raw := strings.TrimSpace(c.Param("code"))
	code, err := strconv.Atoi(raw)
	if err != nil || code < 0 || code > descriptor.MaxCode {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code must be an integer in [0, 999999]"})
		return
	}
	d, err := s.lookup.Descriptor(code)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, descriptorResponse{Descriptor: d, Marker: descriptor.IsMarker(d)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, codes.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, codes.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, codes.ErrNotImplemented):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
