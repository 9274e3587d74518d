package adapter

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// httpConnectivity probes the server health endpoint. A probe failure is
// the normal offline signal, not an error.
type httpConnectivity struct {
	healthURL string
	client    *http.Client
}

func NewHTTPConnectivity(baseURL string, timeout time.Duration) ConnectivityObserver {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &httpConnectivity{
		healthURL: strings.TrimRight(baseURL, "/") + "/api/health",
		client:    &http.Client{Timeout: timeout},
	}
}

func (c *httpConnectivity) Online(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.healthURL, nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// StaticConnectivity is a settable [ConnectivityObserver], used in tests
// and for forcing an explicit offline mode.
type StaticConnectivity struct {
	online atomic.Bool
}

func NewStaticConnectivity(online bool) *StaticConnectivity {
	c := &StaticConnectivity{}
	c.online.Store(online)
	return c
}

func (c *StaticConnectivity) Set(online bool)               { c.online.Store(online) }
func (c *StaticConnectivity) Online(_ context.Context) bool { return c.online.Load() }
