package fits

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-long/jupyterlab-fitsview/internal/fitstest"
	"github.com/joseph-long/jupyterlab-fitsview/internal/models"
)

// multiHDUFile — файл из сценария эталонных тестов: primary f32 10x10 со
// значениями 0..99, image-расширение i16 5x10 и бинарная таблица.
func multiHDUFile() []byte {
	return fitstest.Build(
		fitstest.HDU{
			Bitpix: -32,
			Shape:  []int{10, 10},
			Data:   fitstest.EncodeFloat32(fitstest.Float32Seq(100)),
			Extra: []string{
				fitstest.StringCard("OBJECT", "Test Obj", "target name"),
				fitstest.StringCard("TELESCOP", "Test Tel", ""),
				fitstest.CommentCard("COMMENT", "first comment"),
				fitstest.CommentCard("COMMENT", "second comment"),
				fitstest.CommentCard("HISTORY", "created by the test suite"),
			},
		},
		fitstest.HDU{
			XTension: "IMAGE",
			Name:     "SCI",
			Bitpix:   16,
			Shape:    []int{5, 10},
			Data:     fitstest.EncodeInt16(fitstest.Int16Seq(50)),
		},
		fitstest.BinTable("TABLE", 3, 14),
	)
}

func TestOpen_EnumeratesUnitsInFileOrder(t *testing.T) {
	f, err := Open(bytes.NewReader(multiHDUFile()))
	require.NoError(t, err)
	require.Len(t, f.Units, 3)

	primary := f.Units[0]
	assert.Equal(t, 0, primary.Index)
	assert.Equal(t, "PRIMARY", primary.Name)
	assert.Equal(t, Primary, primary.Kind)
	assert.Equal(t, "PrimaryHDU", primary.Kind.String())
	assert.Equal(t, []int{10, 10}, primary.Shape())
	assert.Equal(t, F32, primary.ElementType())
	assert.True(t, primary.HasData())

	sci := f.Units[1]
	assert.Equal(t, 1, sci.Index)
	assert.Equal(t, "SCI", sci.Name)
	assert.Equal(t, Image, sci.Kind)
	assert.Equal(t, []int{5, 10}, sci.Shape())
	assert.Equal(t, I16, sci.ElementType())

	table := f.Units[2]
	assert.Equal(t, 2, table.Index)
	assert.Equal(t, "TABLE", table.Name)
	assert.Equal(t, BinTable, table.Kind)
	assert.Equal(t, "BinTableHDU", table.Kind.String())
	assert.Nil(t, table.Shape())
	assert.False(t, table.HasData())
}

func TestOpen_ShapeIsOuterToInner(t *testing.T) {
	// NAXIS1=6 (быстрая ось), NAXIS2=5, NAXIS3=4 — наружу отдаётся [4,5,6].
	data := fitstest.Build(fitstest.HDU{
		Bitpix: -32,
		Shape:  []int{4, 5, 6},
		Data:   fitstest.EncodeFloat32(fitstest.Float32Seq(120)),
	})
	f, err := Open(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, f.Units[0].Shape())

	text := f.Units[0].HeaderText
	assert.Contains(t, text, strings.TrimRight(fitstest.IntCard("NAXIS1", 6, ""), " "))
	assert.Contains(t, text, strings.TrimRight(fitstest.IntCard("NAXIS3", 4, ""), " "))
}

func TestOpen_HeaderTextVerbatim(t *testing.T) {
	f, err := Open(bytes.NewReader(multiHDUFile()))
	require.NoError(t, err)

	text := f.Units[0].HeaderText
	assert.Contains(t, text, "OBJECT")
	assert.Contains(t, text, "Test Obj")
	assert.Contains(t, text, "TELESCOP")

	// Дубликаты и порядок карточек сохраняются дословно.
	first := strings.Index(text, "first comment")
	second := strings.Index(text, "second comment")
	history := strings.Index(text, "created by the test suite")
	require.True(t, first >= 0 && second >= 0 && history >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, history)

	// Карточки по 80 колонок, END в текст не входит.
	for _, line := range strings.Split(text, "\n") {
		assert.Len(t, line, 80)
		assert.NotEqual(t, "END", strings.TrimSpace(line))
	}
}

func TestOpen_EmptyPrimary(t *testing.T) {
	data := fitstest.Build(
		fitstest.HDU{Bitpix: 8},
		fitstest.HDU{
			XTension: "IMAGE",
			Name:     "SCI",
			Bitpix:   -64,
			Shape:    []int{2, 3},
			Data:     fitstest.EncodeFloat64([]float64{1, 2, 3, 4, 5, 6}),
		},
	)
	f, err := Open(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, f.Units, 2)

	assert.False(t, f.Units[0].HasData())
	assert.Nil(t, f.Units[0].Shape())
	assert.Equal(t, []int{2, 3}, f.Units[1].Shape())
}

// countingReader считает прочитанные байты, чтобы проверить, что Open не
// трогает сегменты данных.
type countingReader struct {
	*bytes.Reader
	read int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.Reader.Read(p)
	c.read += n
	return n, err
}

func TestOpen_ReadsHeadersOnly(t *testing.T) {
	r := &countingReader{Reader: bytes.NewReader(multiHDUFile())}
	f, err := Open(r)
	require.NoError(t, err)
	require.Len(t, f.Units, 3)

	// По одному заголовочному блоку на юнит; данные пропущены через Seek.
	assert.Equal(t, 3*2880, r.read)
}

func TestLoadRaw(t *testing.T) {
	f, err := Open(bytes.NewReader(multiHDUFile()))
	require.NoError(t, err)

	raw, err := f.LoadRaw(0)
	require.NoError(t, err)
	assert.Equal(t, fitstest.EncodeFloat32(fitstest.Float32Seq(100)), raw)

	raw, err = f.LoadRaw(1)
	require.NoError(t, err)
	assert.Len(t, raw, 100) // 50 элементов по 2 байта, без выравнивания
}

func TestLoadRaw_Errors(t *testing.T) {
	f, err := Open(bytes.NewReader(multiHDUFile()))
	require.NoError(t, err)

	_, err = f.LoadRaw(2)
	assert.ErrorIs(t, err, models.ErrNoData)

	_, err = f.LoadRaw(99)
	assert.ErrorIs(t, err, models.ErrRange)
	assert.Contains(t, err.Error(), "out of range")

	_, err = f.LoadRaw(-1)
	assert.ErrorIs(t, err, models.ErrRange)
}

func TestOpen_FormatErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := Open(bytes.NewReader(nil))
		assert.ErrorIs(t, err, models.ErrFormat)
	})

	t.Run("truncated header block", func(t *testing.T) {
		_, err := Open(bytes.NewReader(multiHDUFile()[:100]))
		assert.ErrorIs(t, err, models.ErrFormat)
	})

	t.Run("missing SIMPLE", func(t *testing.T) {
		data := multiHDUFile()
		copy(data[:8], []byte("SIMPLEX ")) // ключ первой карточки испорчен
		_, err := Open(bytes.NewReader(data))
		assert.ErrorIs(t, err, models.ErrFormat)
	})

	t.Run("invalid BITPIX", func(t *testing.T) {
		data := fitstest.Build(fitstest.HDU{
			Bitpix: 12,
			Shape:  []int{2, 2},
		})
		_, err := Open(bytes.NewReader(data))
		assert.ErrorIs(t, err, models.ErrFormat)
		assert.Contains(t, err.Error(), "BITPIX")
	})
}

func TestOpen_TruncatedData(t *testing.T) {
	// Заголовок целый, сегмент данных оборван: перечисление юнитов работает,
	// а LoadRaw сообщает об усечении.
	data := fitstest.Build(fitstest.HDU{
		Bitpix: -64,
		Shape:  []int{100, 100},
		Data:   fitstest.EncodeFloat64(make([]float64, 100*100)),
	})
	data = data[:len(data)-2880*10]

	f, err := Open(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, f.Units, 1)

	_, err = f.LoadRaw(0)
	assert.ErrorIs(t, err, models.ErrFormat)
}

var _ io.ReadSeeker = (*countingReader)(nil)
