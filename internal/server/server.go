// Package server serves question banks over HTTP in the layout the
// HTTP bank source expects.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/abhisek/quizday/internal/catalog"
	"github.com/abhisek/quizday/internal/questionbank"
	"github.com/abhisek/quizday/internal/selection"
)

// Handler serves banks read from a Source.
type Handler struct {
	src    questionbank.Source
	perDay int
	logger *slog.Logger
}

// New builds the bank server's router.
func New(src questionbank.Source, perDay int, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Handler{src: src, perDay: perDay, logger: logger}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/catalog.json", h.getCatalog)
	r.Get("/themes", h.listThemes)
	r.Get("/themes/{file}", h.getTheme)

	return r
}

func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	cat, err := catalog.Load(r.Context(), h.src, h.logger)
	if err != nil {
		h.logger.Error("load catalog", "error", err)
		respondError(w, http.StatusInternalServerError, "catalog unavailable")
		return
	}
	respondJSON(w, http.StatusOK, cat)
}

type themeInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Questions int    `json:"questions"`
	Days      int    `json:"days"`
	Error     string `json:"error,omitempty"`
}

func (h *Handler) listThemes(w http.ResponseWriter, r *http.Request) {
	cat, err := catalog.Load(r.Context(), h.src, h.logger)
	if err != nil {
		h.logger.Error("load catalog", "error", err)
		respondError(w, http.StatusInternalServerError, "catalog unavailable")
		return
	}

	loader := questionbank.NewLoader(h.src, h.logger)
	out := make([]themeInfo, 0, len(cat.Themes))
	for _, t := range cat.Themes {
		info := themeInfo{ID: t.ID, Name: t.Name}
		qs, err := loader.Load(r.Context(), t.ID)
		if err != nil {
			info.Error = err.Error()
		} else {
			info.Questions = len(qs)
			info.Days = selection.DayCount(len(qs), h.perDay)
		}
		out = append(out, info)
	}
	respondJSON(w, http.StatusOK, out)
}

// getTheme serves a bank file only when it parses as a valid bank, so a
// client never receives a payload it would reject.
func (h *Handler) getTheme(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	const ext = ".json"
	if len(file) <= len(ext) || file[len(file)-len(ext):] != ext {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	theme := file[:len(file)-len(ext)]

	raw, err := h.src.Fetch(r.Context(), questionbank.ThemePath(theme))
	if errors.Is(err, questionbank.ErrNotFound) {
		respondError(w, http.StatusNotFound, "theme not found")
		return
	}
	if err != nil {
		h.logger.Error("fetch theme", "theme", theme, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read theme")
		return
	}

	if _, err := questionbank.Parse(raw); err != nil {
		h.logger.Warn("invalid theme file", "theme", theme, "error", err)
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
		})
	}
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// ListenAndServe runs handler on addr until ctx is cancelled, then shuts
// down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting bank server", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down bank server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
