package out_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	adviceout "studylog/internal/modules/advice/adapter/out"
)

func newServer(t *testing.T, status int, body string, delay time.Duration) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/advice" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestHTTPAdviceSourceFetch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		status   int
		body     string
		wantText *string
		wantErr  bool
	}{
		{name: "advice present", status: 200, body: `{"slip":{"id":1,"advice":"Keep going"}}`, wantText: strPtr("Keep going")},
		{name: "advice null", status: 200, body: `{"slip":{"advice":null}}`},
		{name: "advice missing", status: 200, body: `{"slip":{"id":3}}`},
		{name: "slip missing", status: 200, body: `{"message":{"type":"notice"}}`},
		{name: "slip null", status: 200, body: `{"slip":null}`},
		{name: "server error", status: 500, body: `oops`, wantErr: true},
		{name: "malformed json", status: 200, body: `{"slip":`, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := newServer(t, tt.status, tt.body, 0)
			source, err := adviceout.NewHTTPAdviceSource(server.URL+"/", time.Second)
			require.NoError(t, err)

			got, err := source.Fetch(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantText == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, *tt.wantText, *got)
		})
	}
}

func TestHTTPAdviceSourceTimeout(t *testing.T) {
	t.Parallel()
	server := newServer(t, 200, `{"slip":{"advice":"late"}}`, 2*time.Second)
	source, err := adviceout.NewHTTPAdviceSource(server.URL+"/", 50*time.Millisecond)
	require.NoError(t, err)
	_, err = source.Fetch(context.Background())
	require.Error(t, err)
}

func TestHTTPAdviceSourceTransportError(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL + "/"
	server.Close()

	source, err := adviceout.NewHTTPAdviceSource(base, time.Second)
	require.NoError(t, err)
	_, err = source.Fetch(context.Background())
	require.Error(t, err)
}

func TestNewHTTPAdviceSourceRejectsBadScheme(t *testing.T) {
	t.Parallel()
	_, err := adviceout.NewHTTPAdviceSource("ftp://example.com/", time.Second)
	require.Error(t, err)
}

func strPtr(s string) *string { return &s }
