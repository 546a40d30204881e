package fitshttp

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-long/jupyterlab-fitsview/pkg/fitsproto"
)

// statusWriter запоминает код ответа для access-лога.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// requestLog присваивает запросу идентификатор (или переиспользует
// клиентский) и пишет одну строку access-лога на запрос.
func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(fitsproto.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(fitsproto.HeaderRequestID, id)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		log.Printf("%s %s %s -> %d (%s)", id, r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}
