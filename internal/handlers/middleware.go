package handlers

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/models"
)

const requestIDHeader = "X-Request-ID"

// requestLogger logs every request once it has been handled.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Set("request_id", id)

		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.Log(c.Request.Context(), level, "request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// hashIP hashes a client address with the server secret so page views can be
// counted without storing addresses.
func hashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

func skipTracking(c *gin.Context) bool {
	path := c.Request.URL.Path
	if c.Request.Method != http.MethodGet {
		return true
	}
	if strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/admin/") ||
		strings.HasPrefix(path, "/favicon") ||
		strings.Contains(path, "/api") {
		return true
	}
	// Do Not Track
	return c.GetHeader("DNT") == "1"
}

// visitorTracking records successful page views with hashed client
// addresses.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipTracking(c) {
			c.Next()
			return
		}

		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}
		v := &models.Visitor{
			HashedIP:  hashIP(c.ClientIP(), s.ipSalt),
			UserAgent: c.Request.UserAgent(),
			Path:      c.Request.URL.Path,
		}
		if err := s.repo.Visitors.Record(c.Request.Context(), v); err != nil {
			s.log.Warn("failed to record visitor", "error", err)
		}
	}
}

// adminAuth accepts the admin token as a bearer token or an admin_token
// cookie.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" || token == c.GetHeader("Authorization") {
			token, _ = c.Cookie("admin_token")
		}
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.AdminToken)) != 1 {
			s.log.Warn("rejected admin request", "client", hashIP(c.ClientIP(), s.ipSalt))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized."})
			return
		}
		c.Next()
	}
}
