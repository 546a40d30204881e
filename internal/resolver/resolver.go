// Package resolver отображает логический путь запроса в путь на диске.
// Сервис видит только файлы внутри корневого каталога: запросы с выходом
// за его пределы превращаются в "не найдено", как и несуществующие файлы.
package resolver

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/joseph-long/jupyterlab-fitsview/internal/models"
)

// Resolver — внешний коллаборатор разрешения путей: логический путь запроса
// превращается в существующий файл на диске либо в ErrNotFound.
type Resolver interface {
	Resolve(ctx context.Context, logical string) (string, error)
}

// Dir разрешает пути относительно одного корневого каталога.
type Dir struct {
	root string
}

// NewDir создаёт резолвер поверх каталога root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Resolve нормализует логический путь, прижимает его к корню и проверяет,
// что файл существует. Каталог вместо файла — тоже "не найдено".
func (d *Dir) Resolve(ctx context.Context, logical string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// path.Clean от "/"-якоря съедает любые "..": выйти из root нельзя.
	clean := path.Clean("/" + logical)
	real := filepath.Join(d.root, filepath.FromSlash(clean))

	info, err := os.Stat(real)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", models.ErrNotFound, logical)
	}
	return real, nil
}
