package viewsvc

import (
	"context"

	"github.com/joseph-long/jupyterlab-fitsview/internal/models"
)

// Metadata перечисляет HDU файла: имя, тип, дословный текст заголовка,
// форма и тип элементов. Пиксельные данные при этом не читаются.
func (s *Views) Metadata(ctx context.Context, path string) (models.FileMeta, error) {
	f, ff, err := s.openFits(ctx, path)
	if err != nil {
		return models.FileMeta{}, err
	}
	defer f.Close()

	meta := models.FileMeta{
		Path:        path,
		NExtensions: len(ff.Units),
		HDUs:        make([]models.HDUInfo, 0, len(ff.Units)),
	}

	for _, u := range ff.Units {
		info := models.HDUInfo{
			Index:  u.Index,
			Name:   u.Name,
			Type:   u.Kind.String(),
			Header: u.HeaderText,
		}
		if u.HasData() {
			info.Shape = u.Shape()
			tag := u.ElementType().String()
			info.ArrayType = &tag
		}
		meta.HDUs = append(meta.HDUs, info)
	}

	return meta, nil
}
