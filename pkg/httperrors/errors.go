// Package httperrors мапит ошибки ядра на HTTP-статусы и единый формат
// тела {"error": сообщение}.
package httperrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/joseph-long/jupyterlab-fitsview/internal/models"
)

// Write подбирает статус по категории ошибки и пишет JSON-тело.
// Неизвестные ошибки (ввод-вывод, битые файлы) уходят как 500.
func Write(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		WriteMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrParse),
		errors.Is(err, models.ErrRange),
		errors.Is(err, models.ErrNoData):
		WriteMessage(w, http.StatusBadRequest, err.Error())
	default:
		WriteMessage(w, http.StatusInternalServerError, err.Error())
	}
}

// WriteMessage пишет {"error": msg} с заданным статусом.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
