package upstream

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/entity"
)

// MaxBodySize is the largest response body accepted.
const MaxBodySize = 8 << 20

// Client sends tracking requests over HTTP. Request deadlines come from the
// caller's context; the client itself has no overall timeout.
type Client struct {
	http    *http.Client
	maxBody int64
}

func NewClient() *Client {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
	return &Client{http: &http.Client{Transport: tr}, maxBody: MaxBodySize}
}

// Do issues a GET. Any status is returned as a response; an error means the
// exchange itself failed.
func (c *Client) Do(ctx context.Context, req entity.UpstreamRequest) (entity.UpstreamResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return entity.UpstreamResponse{}, fmt.Errorf("build request: %w", err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return entity.UpstreamResponse{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return entity.UpstreamResponse{}, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > c.maxBody {
		return entity.UpstreamResponse{}, entity.NewError("read body", entity.ErrUpstreamProtocol, nil,
			fmt.Sprintf("response body exceeds %d bytes", c.maxBody))
	}
	return entity.UpstreamResponse{Status: resp.StatusCode, Header: resp.Header, Body: body}, nil
}
