package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// newSalt returns a random per-process salt for client address hashing.
func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}
	return hex.EncodeToString(b), nil
}

// hashIP returns a short stable digest of ip so logs never carry the raw
// address.
func hashIP(ip, salt string) string {
	h := sha256.New()
	h.Write([]byte(ip + salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// requestLogger logs each request with a hashed client address. Static
// assets, health checks and the high-rate pointer endpoint are not logged,
// and requests carrying DNT: 1 are logged without the client hash.
func requestLogger(salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/healthz" ||
			strings.HasSuffix(path, "/pointer") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if c.GetHeader("DNT") != "1" {
			attrs = append(attrs, "client", hashIP(c.ClientIP(), salt))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}
		slog.Info("request", attrs...)
	}
}
