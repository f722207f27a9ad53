// Package serverless runs the HTTP handler inside function hosts that pass
// each request as a JSON envelope instead of a socket.
package serverless

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Request is the envelope a host delivers for one HTTP request.
type Request struct {
	Method          string            `json:"method"`
	Path            string            `json:"path"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	QueryString     string            `json:"queryString"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// Response is the envelope handed back to the host.
type Response struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// Adapter converts envelopes to http.Requests for an http.Handler and
// collects the response.
type Adapter struct {
	handler http.Handler
	logger  zerolog.Logger
}

func NewAdapter(handler http.Handler, logger zerolog.Logger) *Adapter {
	return &Adapter{handler: handler, logger: logger}
}

// Handle serves one envelope. It never fails: malformed envelopes and
// handler panics both come back as a 500 JSON response.
func (a *Adapter) Handle(ctx context.Context, in Request) (out Response) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error().Interface("panic", r).Str("method", in.Method).Str("path", in.Path).Msg("serverless handler panicked")
			out = internalError()
		}
	}()

	req, err := newHTTPRequest(ctx, in)
	if err != nil {
		a.logger.Error().Err(err).Str("path", in.Path).Msg("invalid serverless request")
		return internalError()
	}

	rw := newResponseWriter()
	a.handler.ServeHTTP(rw, req)
	return rw.envelope()
}

func newHTTPRequest(ctx context.Context, in Request) (*http.Request, error) {
	method := in.Method
	if method == "" {
		method = http.MethodGet
	}

	path, query := in.Path, in.QueryString
	if path == "" {
		path = "/"
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path, query = path[:i], path[i+1:]
	}

	body := []byte(in.Body)
	if in.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(in.Body)
		if err != nil {
			return nil, fmt.Errorf("decode body: %w", err)
		}
		body = decoded
	}

	headers := make(http.Header, len(in.Headers))
	for k, v := range in.Headers {
		headers.Set(k, v)
	}

	host := headers.Get("Host")
	if host == "" {
		host = "localhost"
	}
	scheme := "http"
	if headers.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}

	u := &url.URL{Scheme: scheme, Host: host, Path: path, RawQuery: query}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header = headers
	req.Host = host
	req.RequestURI = u.RequestURI()
	if ip := headers.Get("X-Forwarded-For"); ip != "" {
		req.RemoteAddr = strings.TrimSpace(strings.Split(ip, ",")[0])
	}
	return req, nil
}

// responseWriter buffers what the handler writes.
type responseWriter struct {
	header http.Header
	body   bytes.Buffer
	status int
}

func newResponseWriter() *responseWriter {
	return &responseWriter{header: make(http.Header)}
}

func (w *responseWriter) Header() http.Header { return w.header }

func (w *responseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *responseWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(p)
}

func (w *responseWriter) envelope() Response {
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}

	headers := make(map[string]string, len(w.header))
	for k, v := range w.header {
		headers[k] = strings.Join(v, ", ")
	}

	raw := w.body.Bytes()
	if utf8.Valid(raw) {
		return Response{StatusCode: status, Headers: headers, Body: string(raw)}
	}
	return Response{
		StatusCode:      status,
		Headers:         headers,
		Body:            base64.StdEncoding.EncodeToString(raw),
		IsBase64Encoded: true,
	}
}

func internalError() Response {
	return Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `{"error":"internal server error"}`,
	}
}
