package site

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yogu-code/portfolio/internal/analytics"
)

const requestIDHeader = "X-Request-ID"

// requestID tags every request with an id, reusing a well-formed incoming one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLog(c *gin.Context, log *logrus.Entry) *logrus.Entry {
	return log.WithField("request_id", c.GetString(requestIDHeader))
}

// accessLog writes one line per request.
func accessLog(log *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := requestLog(c, log).WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("request")
		case c.Writer.Status() >= http.StatusBadRequest:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}

// recovery turns panics into a logged 500.
func recovery(log *logrus.Entry) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, err any) {
		requestLog(c, log).WithField("panic", err).Error("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}

// trackVisits records page views in the background.
func trackVisits(t *analytics.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Status() < http.StatusBadRequest && analytics.ShouldTrack(c.Request) {
			t.Track(c.ClientIP(), c.Request.UserAgent(), c.Request.URL.Path)
		}
	}
}
