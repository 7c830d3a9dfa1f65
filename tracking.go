package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sunil5411/portfolio/internal/metrics"
)

// Paths that are never counted as page views.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/stream/",
	"/frame/",
	"/metrics",
	"/healthz",
	"/favicon",
}

var hashingSalt = newSalt()

func newSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("tracking salt: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// Hash IP address so logs never carry the raw address (consistent per IP)
func hashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + hashingSalt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// Privacy-conscious page view counting
func visitorTrackingMiddleware(m *metrics.Metrics, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !tracked(path) {
			c.Next()
			return
		}

		// Respect Do Not Track
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		// Unknown routes would make the path label unbounded.
		route := c.FullPath()
		if route == "" || c.Writer.Status() >= 400 {
			return
		}
		m.IncrementPageView(route)
		logger.Debug("page view",
			"path", route,
			"visitor", hashIP(c.ClientIP()),
			"htmx", c.GetHeader("HX-Request") == "true",
		)
	}
}
