// Package api exposes the small HTTP read surface of the collector: health,
// runtime status and lookups against the persisted world state. The realtime
// path is the gRPC update stream and the broker, not HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simtrack/sit-collector/pkg/database"
	"github.com/simtrack/sit-collector/pkg/services"
	"github.com/simtrack/sit-collector/pkg/version"
)

// Stats is implemented by components that expose drop/lag counters.
type Stats interface {
	Dropped() uint64
}

// Server is the HTTP API server.
type Server struct {
	db       *database.Client
	servers  *services.ServerService
	posts    *services.DispatchPostService
	journeys *services.JourneyService
	hub      Stats // may be nil
	broker   Stats // may be nil
}

// NewServer wires the read API.
func NewServer(db *database.Client, servers *services.ServerService, posts *services.DispatchPostService, journeys *services.JourneyService, hub, broker Stats) *Server {
	return &Server{
		db:       db,
		servers:  servers,
		posts:    posts,
		journeys: journeys,
		hub:      hub,
		broker:   broker,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.Health)
	r.GET("/status", s.Status)

	v1 := r.Group("/api/v1")
	v1.GET("/servers", s.ListServers)
	v1.GET("/servers/:id/dispatch-posts", s.ListDispatchPosts)
	v1.GET("/journeys/:runId", s.GetJourney)
	return r
}

// Health reports database reachability and pool statistics.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}

// Status reports fan-out drop counters.
func (s *Server) Status(c *gin.Context) {
	status := gin.H{"version": version.Full()}
	if s.hub != nil {
		status["stream_frames_dropped"] = s.hub.Dropped()
	}
	if s.broker != nil {
		status["broker_frames_dropped"] = s.broker.Dropped()
	}
	c.JSON(http.StatusOK, status)
}

// ListServers returns every known, non-deleted server.
func (s *Server) ListServers(c *gin.Context) {
	all, err := s.servers.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing servers failed"})
		return
	}
	c.JSON(http.StatusOK, all)
}

// ListDispatchPosts returns the non-deleted posts of one server.
func (s *Server) ListDispatchPosts(c *gin.Context) {
	posts, err := s.posts.ListByServer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing dispatch posts failed"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetJourney returns one journey with its ordered events and consist.
func (s *Server) GetJourney(c *gin.Context) {
	j, err := s.journeys.GetByRunID(c.Request.Context(), c.Param("runId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "journey not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "loading journey failed"})
		return
	}
	c.JSON(http.StatusOK, j)
}
