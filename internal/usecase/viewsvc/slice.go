package viewsvc

import (
	"context"
	"fmt"

	"github.com/joseph-long/jupyterlab-fitsview/internal/models"
	"github.com/joseph-long/jupyterlab-fitsview/internal/slice"
)

// Slice вырезает гиперпрямоугольник из массива выбранного HDU.
// Валидация завершается целиком до чтения данных: ни одного байта тела
// при ошибке наружу не уходит.
func (s *Views) Slice(ctx context.Context, path string, hdu int, slices string) (slice.Block, error) {
	f, ff, err := s.openFits(ctx, path)
	if err != nil {
		return slice.Block{}, err
	}
	defer f.Close()

	if hdu < 0 || hdu >= len(ff.Units) {
		return slice.Block{}, fmt.Errorf("HDU index %d out of range (file has %d HDUs): %w",
			hdu, len(ff.Units), models.ErrRange)
	}
	u := ff.Units[hdu]
	if !u.HasData() {
		return slice.Block{}, fmt.Errorf("HDU %d has no data: %w", hdu, models.ErrNoData)
	}

	shape := u.Shape()
	ranges, err := slice.Parse(slices, shape)
	if err != nil {
		return slice.Block{}, err
	}

	raw, err := ff.LoadRaw(hdu)
	if err != nil {
		return slice.Block{}, err
	}

	return slice.Extract(raw, u.ElementType(), shape, ranges)
}
