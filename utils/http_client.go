package utils

import (
	"net/http"
	"time"
)

// NewHTTPClient builds the shared client used for outbound webhook calls.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 5 * time.Second,
	}
}
