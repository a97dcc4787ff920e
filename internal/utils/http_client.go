package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Every request sent through an HTTPClient forwards the trace id stored in
// its context (see [WithTraceID]) as the [TraceIDHeader] header.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetContext(ctx).Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with its own
// underlying resty.Client, JSON as the default Accept type, and the trace id
// propagation hook installed.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		OnBeforeRequest(forwardTraceID)

	return &HTTPClient{Client: client}
}

func forwardTraceID(_ *resty.Client, req *resty.Request) error {
	if traceID, ok := GetTraceIDFromContext(req.Context()); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return nil
}
