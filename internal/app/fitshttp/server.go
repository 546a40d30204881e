package fitshttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joseph-long/jupyterlab-fitsview/internal/config"
	"github.com/joseph-long/jupyterlab-fitsview/internal/resolver"
	"github.com/joseph-long/jupyterlab-fitsview/internal/usecase/viewsvc"
	"github.com/joseph-long/jupyterlab-fitsview/pkg/fitsproto"
)

type Server struct {
	Views viewsvc.Service
	Cfg   *config.Config
}

// NewServer конструктор
func NewServer(cfg *config.Config) (http.Handler, *Server, error) {
	views := viewsvc.New(viewsvc.Deps{
		Resolver: resolver.NewDir(cfg.RootDir),
	})

	srv := &Server{
		Views: views,
		Cfg:   cfg,
	}

	rtr := chi.NewRouter()
	rtr.Use(requestLog)
	rtr.Get(fitsproto.MetadataPath, srv.getMetadata)
	rtr.Get(fitsproto.SlicePath, srv.getSlice)
	rtr.Get("/health", srv.health)

	return rtr, srv, nil
}
