package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/abdidvp/transformspec/internal/adapters/outbound/codegen"
	"github.com/abdidvp/transformspec/internal/domain"
)

// DefaultSpecFileName is used by save-spec when no filename is given.
const DefaultSpecFileName = "module.kiro"

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": HealthMessage})
}

type transformRequest struct {
	KiroContent *string `json:"kiro_content"`
	WorkingDir  string  `json:"working_dir"`
}

// handleTransform streams the agent run as server-sent events until it ends
// or the client disconnects.
func (s *server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.KiroContent == nil {
		sendError(w, http.StatusBadRequest, "kiro_content is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		sendError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	sink := func(ev domain.ProgressEvent) {
		if ctx.Err() != nil {
			return
		}
		if err := codegen.WriteEvent(w, ev); err == nil {
			flusher.Flush()
		}
	}

	outcome, _ := s.Transforms.RunPayload(ctx, domain.TransformRequest{
		KiroContent: *req.KiroContent,
		WorkingDir:  req.WorkingDir,
	}, sink)
	s.metrics.transforms.WithLabelValues(string(outcome)).Inc()
}

// byteArray accepts the wizard's array-of-bytes encoding as well as a
// base64 string.
type byteArray []byte

func (b *byteArray) UnmarshalJSON(data []byte) error {
	switch {
	case len(data) > 0 && data[0] == '[':
		var ints []int
		if err := json.Unmarshal(data, &ints); err != nil {
			return err
		}
		out := make([]byte, len(ints))
		for i, v := range ints {
			if v < 0 || v > 255 {
				return fmt.Errorf("byte %d out of range: %d", i, v)
			}
			out[i] = byte(v)
		}
		*b = out
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		out, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return err
		}
		*b = out
		return nil
	case string(data) == "null":
		return nil
	}
	return errors.New("fileContent must be an array of bytes or a base64 string")
}

type convertRequest struct {
	FileName    string     `json:"fileName"`
	FileContent *byteArray `json:"fileContent"`
}

func (s *server) handleConvertDocument(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FileName == "" || req.FileContent == nil {
		sendError(w, http.StatusBadRequest, "fileName and fileContent are required")
		return
	}
	if !s.Converter.Supports(req.FileName) {
		sendError(w, http.StatusBadRequest, "Unsupported file type. Only PDF and DOCX are supported.")
		return
	}

	text, err := s.Converter.ToText(req.FileName, *req.FileContent)
	if err != nil {
		kind := strings.ToUpper(strings.TrimPrefix(filepath.Ext(req.FileName), "."))
		s.Log.WithError(err).WithField("path", req.FileName).Warn("document conversion failed")
		sendError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to convert %s: %v", kind, err))
		return
	}

	sendJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"textContent": text,
		"fileName":    req.FileName,
	})
}

type saveSpecRequest struct {
	Content   *string `json:"content"`
	TargetDir string  `json:"target_dir"`
	Filename  string  `json:"filename"`
}

func (s *server) handleSaveSpec(w http.ResponseWriter, r *http.Request) {
	var req saveSpecRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == nil || req.TargetDir == "" {
		sendError(w, http.StatusBadRequest, "content and target_dir are required")
		return
	}
	if req.Filename == "" {
		req.Filename = DefaultSpecFileName
	}

	dir, err := s.Saves.Prepare(req.TargetDir)
	if err != nil {
		sendError(w, http.StatusInternalServerError, err.Error())
		return
	}
	path, err := s.Saves.Write(dir, req.Filename, []byte(*req.Content))
	if err != nil {
		sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.Log.WithField("path", path).Info("spec saved")
	sendJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Spec saved to " + path,
		"path":    path,
	})
}
