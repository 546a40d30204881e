package fitshttp

import (
	"encoding/json"
	"net/http"

	"github.com/joseph-long/jupyterlab-fitsview/pkg/httperrors"
)

// getMetadata отдаёт перечень HDU файла в JSON.
func (s *Server) getMetadata(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		httperrors.WriteMessage(w, http.StatusBadRequest, "path parameter is required")
		return
	}

	meta, err := s.Views.Metadata(r.Context(), path)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(meta)
}
