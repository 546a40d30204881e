package viewsvc

import (
	"context"
	"fmt"
	"os"

	"github.com/joseph-long/jupyterlab-fitsview/internal/fits"
	"github.com/joseph-long/jupyterlab-fitsview/internal/models"
	"github.com/joseph-long/jupyterlab-fitsview/internal/resolver"
	"github.com/joseph-long/jupyterlab-fitsview/internal/slice"
)

type (
	// Service объединяет операции чтения FITS-файлов для HTTP-слоя.
	Service interface {
		Metadata(ctx context.Context, path string) (models.FileMeta, error)
		Slice(ctx context.Context, path string, hdu int, slices string) (slice.Block, error)
	}
)

type Deps struct {
	Resolver resolver.Resolver
}

type Views struct {
	Deps
}

// New конструирует сервис просмотра с заданными зависимостями.
func New(deps Deps) *Views {
	return &Views{Deps: deps}
}

var _ Service = (*Views)(nil)

// openFits разрешает логический путь и открывает файл. Хэндл живёт один
// запрос: закрытие — на вызывающей стороне через возвращённый *os.File.
func (s *Views) openFits(ctx context.Context, logical string) (*os.File, *fits.File, error) {
	real, err := s.Resolver.Resolve(ctx, logical)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(real)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", logical, err)
	}

	ff, err := fits.Open(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("read FITS file %s: %w", logical, err)
	}
	return f, ff, nil
}
