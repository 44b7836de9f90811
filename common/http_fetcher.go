package common

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// ResponseNormalizer canonicalizes a response body before it is handed back to
// the caller, so that independent executions of the same request agree
// byte-for-byte even when providers attach volatile fields.
type ResponseNormalizer func(body []byte) []byte

type FetchRequest struct {
	URL              string
	Method           string
	Headers          map[string]string
	Body             []byte
	MaxResponseBytes int64
	Normalize        ResponseNormalizer
}

type FetchResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

type HTTPFetcher interface {
	Fetch(ctx context.Context, req FetchRequest) (FetchResponse, error)
}

type HTTPFetcherImpl struct {
	client *http.Client
}

var _ HTTPFetcher = (*HTTPFetcherImpl)(nil)

func NewHTTPFetcher(client *http.Client) *HTTPFetcherImpl {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPFetcherImpl{client: client}
}

func (f *HTTPFetcherImpl) Fetch(ctx context.Context, req FetchRequest) (FetchResponse, error) {
	var bodyReader io.Reader
	if len(req.Body) > 0 {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bodyReader)
	if err != nil {
		return FetchResponse{}, fmt.Errorf("failed to create request for %s: %w", req.URL, err)
	}

	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return FetchResponse{}, fmt.Errorf("request to %s failed: %w", req.URL, err)
	}

	defer resp.Body.Close()

	reader := io.Reader(resp.Body)
	if req.MaxResponseBytes > 0 {
		reader = io.LimitReader(resp.Body, req.MaxResponseBytes)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return FetchResponse{}, fmt.Errorf("failed to read response from %s: %w", req.URL, err)
	}

	if req.Normalize != nil {
		body = req.Normalize(body)
	}

	return FetchResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}
