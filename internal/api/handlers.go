// ABOUTME: HTTP handlers for records, tool invocation, and avatar sessions.
// ABOUTME: Tool outcomes pass through as plain text inside a JSON envelope.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harperreed/vitalog/internal/store"
)

// toolRequest is the avatar service's tool-invocation payload.
type toolRequest struct {
	Tool       string          `json:"tool"`
	Parameters json.RawMessage `json:"parameters"`
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleGetRecords returns the full normalized health document, as shown on
// the records page.
func (s *Server) handleGetRecords(c *gin.Context) {
	doc := s.store.Load()
	c.JSON(http.StatusOK, doc)
}

// handleAvatarTool executes a named tool on behalf of the external avatar
// agent and returns the outcome text unchanged.
func (s *Server) handleAvatarTool(c *gin.Context) {
	var req toolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body."})
		return
	}
	if req.Tool == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tool not provided."})
		return
	}

	result, err := s.dispatcher.Call(req.Tool, req.Parameters)
	if err != nil {
		var writeErr *store.WriteError
		if errors.As(err, &writeErr) {
			s.logger.Error().Err(err).Str("tool", req.Tool).Msg("tool persistence failure")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal error occurred."})
			return
		}
		s.logger.Warn().Err(err).Str("tool", req.Tool).Msg("tool request rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// handleAvatarSession brokers a session token from the avatar service,
// embedding the current health document in the persona config.
func (s *Server) handleAvatarSession(c *gin.Context) {
	if s.avatar == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"sessionToken": nil,
			"error":        "Avatar API key is not configured.",
		})
		return
	}

	doc := s.store.Load()
	docJSON, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"sessionToken": nil, "error": "An internal error occurred."})
		return
	}

	token, err := s.avatar.SessionToken(c.Request.Context(), string(docJSON))
	if err != nil {
		s.logger.Error().Err(err).Msg("avatar session token request failed")
		c.JSON(http.StatusBadGateway, gin.H{"sessionToken": nil, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionToken": token, "error": nil})
}
