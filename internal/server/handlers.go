package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/squarespiral/pkg/buildinfo"
	"github.com/matzehuels/squarespiral/pkg/errors"
	"github.com/matzehuels/squarespiral/pkg/layout"
	"github.com/matzehuels/squarespiral/pkg/pipeline"
	"github.com/matzehuels/squarespiral/pkg/render"
	"github.com/matzehuels/squarespiral/pkg/store"
)

// packRequest is the body of POST /api/v1/layouts and POST /api/v1/pack.
type packRequest struct {
	Values   []float64 `json:"values"`
	Labels   []string  `json:"labels,omitempty"`
	MaxValue float64   `json:"max_value,omitempty"`
	Sort     *bool     `json:"sort,omitempty"`
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type listResponse struct {
	Layouts []store.Summary `json:"layouts"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handlePack(w http.ResponseWriter, r *http.Request) {
	l, err := s.packFromRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	l, err := s.packFromRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Save(r.Context(), &l); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("stored layout", "id", l.ID, "squares", len(l.Squares))

	w.Header().Set("Location", "/api/v1/layouts/"+l.ID)
	writeJSON(w, http.StatusCreated, l)
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "limit must be a non-negative integer, got %q", v))
			return
		}
		limit = n
	}

	summaries, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Layouts: summaries})
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	l, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRenderLayout(w http.ResponseWriter, r *http.Request) {
	l, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts, err := s.renderOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	artifacts, err := s.runner.Render(r.Context(), l, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", render.ContentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// packFromRequest decodes a packRequest and runs the pack stage.
func (s *Server) packFromRequest(w http.ResponseWriter, r *http.Request) (layout.Layout, error) {
	var req packRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return layout.Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}

	opts := s.defaults
	opts.Values = req.Values
	opts.Labels = req.Labels
	opts.Dataset = nil
	if req.MaxValue != 0 {
		opts.MaxValue = req.MaxValue
	}
	if req.Sort != nil {
		opts.Sort = *req.Sort
	}
	return s.runner.Pack(r.Context(), opts)
}

// renderOptions reads format, style, size and overlay toggles from the
// query string on top of the server defaults.
func (s *Server) renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := s.defaults

	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return opts, err
	}
	opts.Formats = []string{format}

	if v := q.Get("style"); v != "" {
		opts.Style = strings.ToLower(v)
	}

	for name, dst := range map[string]*float64{"width": &opts.Width, "height": &opts.Height, "margin": &opts.Margin} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidValue, "%s must be a number, got %q", name, v)
		}
		*dst = f
	}

	for name, dst := range map[string]*bool{"outline": &opts.Outline, "centroid": &opts.Centroid, "labels": &opts.ShowLabels} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidValue, "%s must be a boolean, got %q", name, v)
		}
		*dst = b
	}
	return opts, nil
}
