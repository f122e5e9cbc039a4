package site

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pranama13/portfolio/internal/titles"
)

// streamTitles pushes a "title" event every interval. The open stream is
// the mounted view: a fresh cycle starts at the first title and its timer
// is torn down when the client goes away.
func (s *Server) streamTitles(c *gin.Context) {
	log := s.logger(c)

	cycle, err := titles.New(s.content.Profile.Titles)
	if err != nil {
		log.Error("build title cycle", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx := c.Request.Context()
	ticks := make(chan titles.Tick)
	mount := cycle.Mount(ctx, s.interval, func(ctx context.Context, t titles.Tick) {
		select {
		case ticks <- t:
		case <-ctx.Done():
		}
	}, s.titleOpts...)
	defer mount.Unmount()

	log.Debug("title stream mounted", zap.Duration("interval", s.interval))

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	sent := 0
	c.Stream(func(io.Writer) bool {
		select {
		case t := <-ticks:
			c.SSEvent("title", t)
			sent++
			return true
		case <-ctx.Done():
			return false
		}
	})

	log.Debug("title stream unmounted", zap.Int("events", sent))
}
