package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/zeroai-ui/tokens"
)

func newTestHandler() *Handler {
	return NewHandler([]tokens.Theme{tokens.Default(), tokens.Taobao()}, "default", zerolog.Nop())
}

func TestThemeCSS(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantBody   string
	}{
		{"default variant", "/theme.css", http.StatusOK, "--ai-primary: #8B5CF6;"},
		{"named variant", "/theme.css?variant=taobao", http.StatusOK, "--ai-primary: #FF6600;"},
		{"unknown variant", "/theme.css?variant=neon", http.StatusNotFound, "unknown variant: neon"},
		{"tailwind config", "/tailwind.config.js?variant=taobao", http.StatusOK, "module.exports = {"},
		{"json tokens", "/tokens.json", http.StatusOK, `"name": "default"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			require.Equal(t, tt.wantStatus, rec.Code)
			require.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestThemeCSSContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/theme.css", nil))
	require.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestRejectsPost(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/theme.css", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestVariants(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/variants", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Default  string   `json:"default"`
		Variants []string `json:"variants"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "default", body.Default)
	require.Equal(t, []string{"default", "taobao"}, body.Variants)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, ln, newTestHandler(), zerolog.Nop())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/theme.css?variant=taobao")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "#FF6600"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
