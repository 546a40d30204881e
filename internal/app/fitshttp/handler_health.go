package fitshttp

import (
	"encoding/json"
	"net/http"
	"os"
)

// healthStats — payload ответа /health.
type healthStats struct {
	OK      bool   `json:"ok"`
	RootDir string `json:"root_dir"`
}

// health проверяет, что каталог данных существует и доступен.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	info, err := os.Stat(s.Cfg.RootDir)
	ok := err == nil && info.IsDir()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(healthStats{
		OK:      ok,
		RootDir: s.Cfg.RootDir,
	})
}
