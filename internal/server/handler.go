// Package server serves generated theme files over HTTP for local
// development.
package server

import (
	"bytes"
	"net/http"
	"sort"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/agiangrant/zeroai-ui/internal/render"
	"github.com/agiangrant/zeroai-ui/tokens"
)

// Handler serves theme assets for a fixed set of themes.
type Handler struct {
	themes       map[string]tokens.Theme
	defaultTheme string
	logger       zerolog.Logger
	mux          *http.ServeMux
}

// NewHandler creates a handler for the given themes. Requests without a
// variant query parameter get defaultTheme.
func NewHandler(themes []tokens.Theme, defaultTheme string, logger zerolog.Logger) *Handler {
	h := &Handler{
		themes:       make(map[string]tokens.Theme, len(themes)),
		defaultTheme: defaultTheme,
		logger:       logger,
		mux:          http.NewServeMux(),
	}
	for _, t := range themes {
		h.themes[t.Name] = t
	}

	h.mux.HandleFunc("GET /theme.css", h.asset("css", "text/css; charset=utf-8"))
	h.mux.HandleFunc("GET /tokens.json", h.asset("json", "application/json"))
	h.mux.HandleFunc("GET /tailwind.config.js", h.asset("tailwind", "text/javascript; charset=utf-8"))
	h.mux.HandleFunc("GET /variants", h.handleVariants)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) asset(format, contentType string) http.HandlerFunc {
	renderer, err := render.Lookup(format)
	if err != nil {
		panic(err)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("variant")
		if name == "" {
			name = h.defaultTheme
		}
		theme, ok := h.themes[name]
		if !ok {
			http.Error(w, "unknown variant: "+name, http.StatusNotFound)
			return
		}

		var buf bytes.Buffer
		if err := renderer.Render(&buf, render.NewInput(theme)); err != nil {
			h.logger.Error().Err(err).Str("format", format).Str("variant", name).Msg("render failed")
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		if _, err := w.Write(buf.Bytes()); err != nil {
			h.logger.Debug().Err(err).Msg("write response")
		}
	}
}

func (h *Handler) handleVariants(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(h.themes))
	for name := range h.themes {
		names = append(names, name)
	}
	sort.Strings(names)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"default":  h.defaultTheme,
		"variants": names,
	}); err != nil {
		h.logger.Debug().Err(err).Msg("write response")
	}
}
