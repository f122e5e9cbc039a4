package site

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// visitorHasher replaces client IPs with a salted hash so the access log
// never holds a raw address. The hash is stable for the life of the process.
type visitorHasher struct {
	salt string
}

func newVisitorHasher(salt string) (*visitorHasher, error) {
	if salt == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return nil, fmt.Errorf("generate ip hash salt: %w", err)
		}
		salt = hex.EncodeToString(b)
	}
	return &visitorHasher{salt: salt}, nil
}

func (h *visitorHasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// untracked paths are logged without a visitor hash.
func untracked(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/images/") ||
		strings.HasPrefix(path, "/favicon") ||
		path == "/healthz"
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// accessLog writes one line per request. Requests carrying DNT: 1 are
// logged without the visitor hash or user agent.
func accessLog(log *zap.Logger, hasher *visitorHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("latency", time.Since(start)),
			zap.String(requestIDKey, c.GetString(requestIDKey)),
		}
		if !untracked(path) && c.GetHeader("DNT") != "1" {
			fields = append(fields,
				zap.String("visitor", hasher.Hash(c.ClientIP())),
				zap.String("user_agent", c.Request.UserAgent()),
			)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

func recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, err any) {
		log.Error("panic recovered",
			zap.Any("panic", err),
			zap.String("path", c.Request.URL.Path),
			zap.String(requestIDKey, c.GetString(requestIDKey)),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
