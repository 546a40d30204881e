package slice

import (
	"fmt"

	"github.com/joseph-long/jupyterlab-fitsview/internal/fits"
	"github.com/joseph-long/jupyterlab-fitsview/internal/models"
)

// Block — результат среза: форма, тип элемента и плоский row-major буфер
// в little-endian. len(Bytes) == Π Shape * Type.Size().
type Block struct {
	Shape []int
	Type  fits.ArrayType
	Bytes []byte
}

// Extract вырезает гиперпрямоугольник ranges из raw — плоского big-endian
// массива формы shape (оси от внешней к внутренней). Выход всегда
// little-endian независимо от платформы; тип элемента не меняется.
//
// Копирование идёт непрерывными отрезками внутренней оси: внешняя ось
// запроса меняется в выходном буфере медленнее всех.
func Extract(raw []byte, typ fits.ArrayType, shape []int, ranges []Range) (Block, error) {
	if len(ranges) != len(shape) || len(shape) == 0 {
		return Block{}, fmt.Errorf("got %d ranges for %d axes: %w", len(ranges), len(shape), models.ErrRange)
	}

	width := typ.Size()
	total := 1
	outShape := make([]int, len(ranges))
	for i, rg := range ranges {
		outShape[i] = rg.Stop - rg.Start
		total *= outShape[i]
	}

	// Байтовые страйды исходного массива по каждой оси.
	strides := make([]int, len(shape))
	stride := width
	elems := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
		elems *= shape[i]
	}
	if len(raw) != elems*width {
		return Block{}, fmt.Errorf("raw array is %d bytes, shape %v of %s needs %d: %w",
			len(raw), shape, typ, elems*width, models.ErrFormat)
	}

	out := make([]byte, total*width)
	inner := len(shape) - 1
	runBytes := outShape[inner] * width

	// Одометр по внешним осям выходного массива; внутренняя ось копируется
	// одним непрерывным отрезком.
	counter := make([]int, inner)
	dst := 0
	for {
		src := ranges[inner].Start * width
		for i := 0; i < inner; i++ {
			src += (ranges[i].Start + counter[i]) * strides[i]
		}
		copy(out[dst:dst+runBytes], raw[src:src+runBytes])
		dst += runBytes

		axis := inner - 1
		for ; axis >= 0; axis-- {
			counter[axis]++
			if counter[axis] < outShape[axis] {
				break
			}
			counter[axis] = 0
		}
		if axis < 0 {
			break
		}
	}

	// FITS хранит big-endian; контракт ответа — little-endian.
	swapToLittleEndian(out, width)

	return Block{Shape: outShape, Type: typ, Bytes: out}, nil
}

// swapToLittleEndian обращает порядок байтов каждого элемента на месте.
func swapToLittleEndian(buf []byte, width int) {
	if width < 2 {
		return
	}
	for i := 0; i < len(buf); i += width {
		for a, b := i, i+width-1; a < b; a, b = a+1, b-1 {
			buf[a], buf[b] = buf[b], buf[a]
		}
	}
}
