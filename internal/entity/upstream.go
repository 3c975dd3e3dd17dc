package entity

import "net/http"

// UpstreamRequest is a GET against the tracking backend.
type UpstreamRequest struct {
	URL    string
	Header http.Header
}

// UpstreamResponse is whatever the backend answered, regardless of status.
type UpstreamResponse struct {
	Status int
	Header http.Header
	Body   []byte
}
