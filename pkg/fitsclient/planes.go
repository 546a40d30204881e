package fitsclient

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SlicePlanes скачивает куб по внешней оси: по одному срезу-плоскости на
// каждый индекс первой размерности shape, не более workers запросов
// одновременно. Результат упорядочен по индексу плоскости; при первой
// ошибке остальные запросы отменяются через контекст группы.
func SlicePlanes(ctx context.Context, c Client, baseURL, path string, hdu int, shape []int, workers int) ([]SliceResult, error) {
	if len(shape) < 2 {
		return nil, fmt.Errorf("plane fetch needs at least 2 axes, shape has %d", len(shape))
	}
	if workers <= 0 {
		workers = 1
	}

	planes := make([]SliceResult, shape[0])

	eg, egCtx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)

	for idx := 0; idx < shape[0]; idx++ {
		idx := idx

		eg.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-egCtx.Done():
				return egCtx.Err()
			}
			defer func() { <-sem }()

			res, err := c.Slice(egCtx, baseURL, path, hdu, planeSpec(idx, shape))
			if err != nil {
				return fmt.Errorf("plane %d: %w", idx, err)
			}
			planes[idx] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return planes, nil
}

// planeSpec собирает спецификацию среза одной плоскости: idx:idx+1 по
// внешней оси, полный диапазон по остальным.
func planeSpec(idx int, shape []int) string {
	axes := make([]string, len(shape))
	axes[0] = fmt.Sprintf("%d:%d", idx, idx+1)
	for i := 1; i < len(shape); i++ {
		axes[i] = fmt.Sprintf("0:%d", shape[i])
	}
	return strings.Join(axes, ",")
}
