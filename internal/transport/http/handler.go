package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"media-relay/internal/domain"
	"media-relay/internal/usecase"
)

const (
	msgUnsupportedURL = "Unsupported or invalid URL. Only YouTube and Instagram are supported."
	msgVideoIDParse   = "Could not parse YouTube video ID."
)

// EnvFlags carries the configuration-presence bits the diagnostics
// endpoint reports. The values themselves stay out of the transport
// layer.
type EnvFlags struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

type Handler struct {
	service *usecase.Service
	env     EnvFlags
}

func NewHandler(service *usecase.Service, env EnvFlags) *Handler {
	return &Handler{service: service, env: env}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(r.URL.Path, "/")

	switch path {
	case "":
		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, messageResponse{Message: "Social Media Downloader Backend is running"})
			return
		}
	case "api/analyze":
		if r.Method == http.MethodPost {
			h.handleAnalyze(w, r)
			return
		}
	case "api/fetch":
		if r.Method == http.MethodPost {
			h.handleFetch(w, r)
			return
		}
	case "test":
		if r.Method == http.MethodGet {
			h.handleDiagnostics(w, r)
			return
		}
	default:
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
		return
	}

	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var body urlRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}

	p, err := h.service.Analyze(body.URL)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_URL", "url must be a valid http or https URL")
		return
	}

	resp := analyzeResponse{Valid: p != domain.PlatformNone}
	if resp.Valid {
		name := string(p)
		resp.Platform = &name
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleFetch(w http.ResponseWriter, r *http.Request) {
	var body urlRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}

	res, err := h.service.Fetch(r.Context(), body.URL)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidURL), errors.Is(err, usecase.ErrUnsupportedPlatform):
			writeError(w, http.StatusBadRequest, "UNSUPPORTED_URL", msgUnsupportedURL)
		case errors.Is(err, usecase.ErrVideoIDParse):
			writeError(w, http.StatusBadRequest, "VIDEO_ID_PARSE", msgVideoIDParse)
		default:
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		}
		return
	}

	resp := fetchResponse{
		Platform:  string(res.Platform),
		Title:     res.Title,
		Thumbnail: res.Thumbnail,
		Info:      res.Info,
	}
	resp.Downloads = make([]downloadOption, 0, len(res.Downloads))
	for _, d := range res.Downloads {
		resp.Downloads = append(resp.Downloads, downloadOption{
			Type:    string(d.Type),
			Quality: d.Quality,
			URL:     d.URL,
			Note:    d.Note,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleDiagnostics never fails: probe problems are rendered as string
// statuses inside a 200 reply.
func (h *Handler) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	resp := diagnosticsResponse{
		Backend:      "running",
		DatabaseURL:  presence(h.env.DatabaseURLSet),
		DatabaseName: presence(h.env.DatabaseNameSet),
		Collections:  []string{},
	}

	rep := h.service.Diagnostics(r.Context())
	resp.Database = rep.Database
	resp.ConnectionStatus = rep.ConnectionStatus
	if len(rep.Tables) > 0 {
		resp.Collections = rep.Tables
	}

	writeJSON(w, http.StatusOK, resp)
}

func presence(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func writeError(w http.ResponseWriter, status int, code string, msg string) {
	writeJSON(w, status, errorResponse{Error: errorInfo{Code: code, Message: msg}})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	_ = enc.Encode(payload)
}
