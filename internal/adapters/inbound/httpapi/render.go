package httpapi

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/abdidvp/transformspec/internal/application"
	"github.com/abdidvp/transformspec/internal/domain"
)

// maxSpecBytes bounds request bodies carrying a spec with inline documents.
const maxSpecBytes = 32 << 20

var (
	previewMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	previewPolicy   = bluemonday.UGCPolicy()
)

// decodeSpec reads a JSON spec from the request body.
func (s *server) decodeSpec(w http.ResponseWriter, r *http.Request) (*domain.TransformationSpec, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSpecBytes))
	if err != nil {
		sendError(w, http.StatusRequestEntityTooLarge, err.Error())
		return nil, false
	}
	spec, err := s.Decoder.Decode("spec.json", data)
	if err != nil {
		sendError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return spec, true
}

func (s *server) renderError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidSpec) {
		sendError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.Log.WithError(err).Error("rendering failed")
	sendError(w, http.StatusInternalServerError, err.Error())
}

// handleRender returns one report as a download.
func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	kind, err := application.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		sendError(w, http.StatusNotFound, err.Error())
		return
	}
	format, err := application.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		sendError(w, http.StatusNotFound, err.Error())
		return
	}
	spec, ok := s.decodeSpec(w, r)
	if !ok {
		return
	}

	a, err := s.Renders.Render(kind, format, spec)
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.metrics.renders.WithLabelValues(string(kind), string(format)).Inc()

	w.Header().Set("Content-Type", a.MIMEType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+domain.Slug(spec.TargetProject)+"-"+a.Name+`"`)
	if a.Pages > 0 {
		w.Header().Set("X-Page-Count", strconv.Itoa(a.Pages))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(a.Data)
}

// handlePreview returns the Markdown report as sanitized HTML.
func (s *server) handlePreview(w http.ResponseWriter, r *http.Request) {
	kind, err := application.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		sendError(w, http.StatusNotFound, err.Error())
		return
	}
	spec, ok := s.decodeSpec(w, r)
	if !ok {
		return
	}

	a, err := s.Renders.Render(kind, application.FormatMarkdown, spec)
	if err != nil {
		s.renderError(w, err)
		return
	}
	var html bytes.Buffer
	if err := previewMarkdown.Convert(a.Data, &html); err != nil {
		s.renderError(w, err)
		return
	}
	s.metrics.renders.WithLabelValues(string(kind), "html").Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(previewPolicy.SanitizeReader(&html).Bytes())
}

// handleInstructions returns the agent payload. The dir query parameter
// overrides the artifact directory used in file references.
func (s *server) handleInstructions(w http.ResponseWriter, r *http.Request) {
	spec, ok := s.decodeSpec(w, r)
	if !ok {
		return
	}
	dir := r.URL.Query().Get("dir")
	if dir == "" {
		dir = s.ArtifactDir
	}

	payload, err := s.Renders.Instructions(spec, domain.DefaultArtifactNames(dir))
	if err != nil {
		s.renderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, payload)
}

func (s *server) handleValidate(w http.ResponseWriter, r *http.Request) {
	spec, ok := s.decodeSpec(w, r)
	if !ok {
		return
	}
	issues := s.Validator.Validate(spec)
	if issues == nil {
		issues = []domain.ValidationIssue{}
	}
	sendJSON(w, http.StatusOK, map[string]any{"valid": len(issues) == 0, "issues": issues})
}
