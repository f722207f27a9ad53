package serverless

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
)

func TestAdapter_TranslatesRequest(t *testing.T) {
	var got *http.Request
	var gotBody string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	out := NewAdapter(h, zerolog.Nop()).Handle(context.Background(), Request{
		Method:          http.MethodPost,
		Path:            "/comments/?post=p1",
		Headers:         map[string]string{"content-type": "application/json", "AUTHORIZATION": "Token abc", "x-forwarded-proto": "https"},
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"content":"hi"}`)),
		IsBase64Encoded: true,
	})

	if got == nil {
		t.Fatalf("handler not called")
	}
	if got.Method != http.MethodPost || got.URL.Path != "/comments/" || got.URL.Query().Get("post") != "p1" {
		t.Fatalf("unexpected request line: %s %s", got.Method, got.URL)
	}
	if got.Header.Get("Authorization") != "Token abc" || got.Header.Get("Content-Type") != "application/json" {
		t.Fatalf("headers not carried over: %v", got.Header)
	}
	if got.URL.Scheme != "https" {
		t.Fatalf("expected https scheme, got %q", got.URL.Scheme)
	}
	if gotBody != `{"content":"hi"}` {
		t.Fatalf("unexpected body %q", gotBody)
	}

	if out.StatusCode != http.StatusCreated || out.Body != `{"ok":true}` || out.IsBase64Encoded {
		t.Fatalf("unexpected response: %+v", out)
	}
	if out.Headers["Content-Type"] != "application/json" {
		t.Fatalf("unexpected response headers: %v", out.Headers)
	}
}

func TestAdapter_QueryStringField(t *testing.T) {
	var query string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
	})

	out := NewAdapter(h, zerolog.Nop()).Handle(context.Background(), Request{Path: "/comments", QueryString: "post=p2"})
	if query != "post=p2" {
		t.Fatalf("expected query post=p2, got %q", query)
	}
	if out.StatusCode != http.StatusOK {
		t.Fatalf("expected default 200, got %d", out.StatusCode)
	}
}

func TestAdapter_BinaryBodyIsBase64(t *testing.T) {
	raw := []byte{0xff, 0xfe, 0x00, 0x01}
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(raw)
	})

	out := NewAdapter(h, zerolog.Nop()).Handle(context.Background(), Request{Path: "/"})
	if !out.IsBase64Encoded {
		t.Fatalf("expected base64 body")
	}
	decoded, err := base64.StdEncoding.DecodeString(out.Body)
	if err != nil || string(decoded) != string(raw) {
		t.Fatalf("body mismatch: %v %v", decoded, err)
	}
}

func TestAdapter_Failures(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })
	cases := map[string]struct {
		h  http.Handler
		in Request
	}{
		"panic":      {panicking, Request{Path: "/"}},
		"bad base64": {http.NotFoundHandler(), Request{Path: "/", Body: "%%%", IsBase64Encoded: true}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out := NewAdapter(tc.h, zerolog.Nop()).Handle(context.Background(), tc.in)
			if out.StatusCode != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", out.StatusCode)
			}
			if out.Body != `{"error":"internal server error"}` {
				t.Fatalf("unexpected body %q", out.Body)
			}
		})
	}
}
