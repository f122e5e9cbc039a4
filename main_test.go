package main

import (
	"bufio"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranama13/portfolio/internal/content"
	"github.com/pranama13/portfolio/internal/site"
	"github.com/pranama13/portfolio/internal/titles"
)

type fakeTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stopped.Store(true) }

func TestStopEndsOpenTitleStreams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	page, err := content.Load()
	require.NoError(t, err)

	ticker := &fakeTicker{ch: make(chan time.Time)}
	s, err := site.New(site.Options{
		Content: page,
		TitleOptions: []titles.Option{titles.WithTicker(func(time.Duration) titles.Ticker {
			return ticker
		})},
	})
	require.NoError(t, err)

	srv := newHTTPServer("", s)
	ts := httptest.NewUnstartedServer(nil)
	ts.Config = srv.Server
	ts.Start()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/titles/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The stream is live before shutdown.
	ticker.ch <- time.Now()
	r := bufio.NewReader(resp.Body)
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "data:") {
			assert.Contains(t, line, `"index":1`)
			break
		}
	}

	done := make(chan error, 1)
	go func() { done <- srv.stop(5 * time.Second) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("stop did not return while a title stream was open")
	}
	assert.True(t, ticker.stopped.Load())
}
