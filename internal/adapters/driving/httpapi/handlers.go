package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
	"github.com/kartka-labs/kartka-cli/internal/logger"
)

// searchResponse is the GET /search reply.
type searchResponse struct {
	Links []string `json:"links"`
}

// uploadRequest is the PUT /upload body.
type uploadRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// uploadResponse is the PUT /upload reply.
type uploadResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// handleSearch answers GET /search?query=<text>.
// An empty query is a valid request with zero links.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	results, err := s.search.Search(r.Context(), query)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}

	links := make([]string, 0, len(results))
	for _, result := range results {
		links = append(links, result.Link)
	}

	writeJSON(w, http.StatusOK, searchResponse{Links: links})
}

// handleUpload answers PUT /upload with body {name, content}.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUploadResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.documents.Upload(r.Context(), req.Name, req.Content)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, uploadResponse{Success: true})
	case errors.Is(err, domain.ErrDuplicateIdentifier):
		writeUploadResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeUploadResponse(w, http.StatusBadRequest, err.Error())
	default:
		logger.Warn("Upload failed: %v", err)
		writeUploadResponse(w, http.StatusInternalServerError, "upload failed")
	}
}

func writeUploadResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, uploadResponse{Success: false, Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("Encoding response failed: %v", err)
	}
}
