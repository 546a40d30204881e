// Package slice разбирает текстовую спецификацию многомерного среза и
// вырезает гиперпрямоугольник из сырого массива FITS-данных.
package slice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joseph-long/jupyterlab-fitsview/internal/models"
)

// Range — полуоткрытый интервал [Start, Stop) по одной оси.
type Range struct {
	Start int
	Stop  int
}

// Parse разбирает спецификацию вида "start:stop,start:stop,..." и проверяет
// её против shape (оси от внешней к внутренней). Шаг не поддерживается,
// каждая ось указывается явно.
//
// Порядок проверок фиксирован, чтобы тексты ошибок были детерминированы:
// сначала синтаксис и значения каждого токена, затем совпадение числа осей,
// затем границы по каждой оси.
func Parse(text string, shape []int) ([]Range, error) {
	parts := strings.Split(text, ",")
	ranges := make([]Range, 0, len(parts))

	for _, part := range parts {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid slice %q, expected 'start:stop': %w", part, models.ErrParse)
		}
		start, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid slice start in %q: %w", part, models.ErrParse)
		}
		stop, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid slice stop in %q: %w", part, models.ErrParse)
		}
		if start < 0 || stop < 0 {
			return nil, fmt.Errorf("negative indices not supported in %q: %w", part, models.ErrRange)
		}
		if start >= stop {
			return nil, fmt.Errorf("start must be less than stop in %q: %w", part, models.ErrRange)
		}
		ranges = append(ranges, Range{Start: start, Stop: stop})
	}

	if len(ranges) != len(shape) {
		return nil, fmt.Errorf("number of slice dimensions (%d) does not match data dimensions (%d), data shape %v: %w",
			len(ranges), len(shape), shape, models.ErrRange)
	}

	for axis, rg := range ranges {
		if rg.Stop > shape[axis] {
			return nil, fmt.Errorf("slice [%d:%d] on axis %d out of bounds for dimension size %d: %w",
				rg.Start, rg.Stop, axis, shape[axis], models.ErrRange)
		}
	}

	return ranges, nil
}
