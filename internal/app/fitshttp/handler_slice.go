package fitshttp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/joseph-long/jupyterlab-fitsview/pkg/fitsproto"
	"github.com/joseph-long/jupyterlab-fitsview/pkg/httperrors"
)

// getSlice вырезает срез массива и отдаёт его сырыми little-endian байтами.
// Тело пишется только после полной валидации запроса: при любой ошибке
// клиент получает JSON {"error": ...} и ни одного байта данных.
func (s *Server) getSlice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	path := q.Get("path")
	if path == "" {
		httperrors.WriteMessage(w, http.StatusBadRequest, "path parameter is required")
		return
	}
	slices := q.Get("slices")
	if slices == "" {
		httperrors.WriteMessage(w, http.StatusBadRequest, "slices parameter is required")
		return
	}

	hduStr := q.Get("hdu")
	if hduStr == "" {
		hduStr = "0"
	}
	hdu, err := strconv.Atoi(hduStr)
	if err != nil {
		httperrors.WriteMessage(w, http.StatusBadRequest, fmt.Sprintf("invalid hdu parameter %q", hduStr))
		return
	}

	block, err := s.Views.Slice(r.Context(), path, hdu, slices)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	shape, err := json.Marshal(block.Shape)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(block.Bytes)))
	w.Header().Set(fitsproto.HeaderShape, string(shape))
	w.Header().Set(fitsproto.HeaderType, block.Type.String())
	_, _ = w.Write(block.Bytes)
}
