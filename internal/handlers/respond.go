package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	msgEmptyBody   = "Request body is empty."
	msgInvalidJSON = "Invalid JSON body."
)

// page merges the values every template expects into data.
func (s *Server) page(title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["recaptchaSiteKey"] = s.cfg.RecaptchaPublicKey
	return data
}

func isAPIPath(path string) bool {
	return strings.Contains(path, "/api/") || strings.HasSuffix(path, "/api")
}

// notFound answers JSON on API paths and the 404 page everywhere else.
func (s *Server) notFound(c *gin.Context) {
	if isAPIPath(c.Request.URL.Path) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found."})
		return
	}
	c.HTML(http.StatusNotFound, "404.html", s.page("Page not found", nil))
	c.Abort()
}

func (s *Server) serverError(c *gin.Context, err error) {
	s.log.Error("request failed", "path", c.Request.URL.Path, "error", err)
	if isAPIPath(c.Request.URL.Path) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}
	c.HTML(http.StatusInternalServerError, "error.html", s.page("Error", gin.H{
		"error": "Something went wrong while loading this page.",
	}))
	c.Abort()
}

// idParam parses the :name path parameter as a positive id.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// bindBody decodes a non-empty JSON object body into v. It writes the 400
// response itself and returns false when the body is missing or malformed.
func bindBody(c *gin.Context, v any) bool {
	raw, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgEmptyBody})
		return false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalidJSON})
		return false
	}
	if len(fields) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgEmptyBody})
		return false
	}

	if err := json.Unmarshal(raw, v); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalidJSON + " " + err.Error()})
		return false
	}
	return true
}
