package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/entity"
)

func TestClient_DoForwardsHeadersAndReturnsResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/shipments", r.URL.Path)
		assert.Equal(t, "1806203236", r.URL.Query().Get("query"))
		assert.Equal(t, "Mozilla/5.0", r.UserAgent())
		assert.Equal(t, "SOL", r.Header.Get("captcha-solution"))

		w.Header().Set("captcha-puzzle", "PUZZLE")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"captcha"}`))
	}))
	defer srv.Close()

	h := http.Header{}
	h.Set("User-Agent", "Mozilla/5.0")
	h.Set("captcha-solution", "SOL")

	resp, err := NewClient().Do(context.Background(), entity.UpstreamRequest{
		URL:    srv.URL + "/shipments?query=1806203236",
		Header: h,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusTooManyRequests, resp.Status)
	require.Equal(t, "PUZZLE", resp.Header.Get("captcha-puzzle"))
	require.JSONEq(t, `{"error":"captcha"}`, string(resp.Body))
}

func TestClient_DoBodyLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n, _ := strconv.Atoi(r.URL.Query().Get("n"))
		_, _ = w.Write([]byte(strings.Repeat("x", n)))
	}))
	defer srv.Close()

	c := NewClient()
	c.maxBody = 10

	resp, err := c.Do(context.Background(), entity.UpstreamRequest{URL: srv.URL + "?n=10"})
	require.NoError(t, err)
	require.Len(t, resp.Body, 10)

	_, err = c.Do(context.Background(), entity.UpstreamRequest{URL: srv.URL + "?n=11"})
	require.ErrorIs(t, err, entity.ErrUpstreamProtocol)
	require.Contains(t, err.Error(), "response body exceeds 10 bytes")
}

func TestClient_DoHonoursContextDeadline(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient().Do(ctx, entity.UpstreamRequest{URL: srv.URL})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_DoBadURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient().Do(context.Background(), entity.UpstreamRequest{URL: "://bad"})
	require.Error(t, err)
}
