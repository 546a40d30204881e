// Package fits читает структуру FITS-файлов: перечисляет HDU (header/data
// unit), отдаёт дословный текст заголовков и по запросу — сырой сегмент
// данных одного юнита. Разбор следует версии 3.0 стандарта FITS
// (2880-байтные блоки, 80-колоночные карточки, big-endian данные).
//
// Open проходит только заголовки: сегменты данных пропускаются через Seek,
// поэтому перечисление HDU не читает пиксели. LoadRaw поднимает данные
// одного юнита целиком, не меняя порядок байтов — конверсию в little-endian
// делает экстрактор среза, которому нужна лишь вырезанная часть.
package fits

import (
	"fmt"
	"io"

	"github.com/joseph-long/jupyterlab-fitsview/internal/models"
)

// Kind — тип HDU.
type Kind int

const (
	Primary Kind = iota
	Image
	Table
	BinTable
	Unknown
)

var kindNames = map[Kind]string{
	Primary:  "PrimaryHDU",
	Image:    "ImageHDU",
	Table:    "TableHDU",
	BinTable: "BinTableHDU",
	Unknown:  "UnknownHDU",
}

// String возвращает wire-имя типа HDU (совпадает с полем type в metadata).
func (k Kind) String() string {
	return kindNames[k]
}

// Unit — один HDU: метаданные плюс координаты сегмента данных в файле.
// Сами данные не загружаются до вызова File.LoadRaw.
type Unit struct {
	Index      int
	Name       string
	Kind       Kind
	HeaderText string

	naxis      []int // в порядке хранения: NAXIS1 — самая быстрая ось
	bitpix     int
	dataOffset int64
	dataSize   int64 // без выравнивающего хвоста
}

// HasData сообщает, содержит ли юнит массив пикселей. Таблицы и пустые
// primary-заголовки массива не несут.
func (u *Unit) HasData() bool {
	if u.Kind != Primary && u.Kind != Image {
		return false
	}
	if len(u.naxis) == 0 {
		return false
	}
	for _, n := range u.naxis {
		if n <= 0 {
			return false
		}
	}
	return true
}

// Shape возвращает размерности массива от внешней оси к внутренней
// (FITS хранит NAXIS1 как самую быструю ось, поэтому порядок обращён).
// Для юнитов без массива возвращается nil.
func (u *Unit) Shape() []int {
	if !u.HasData() {
		return nil
	}
	shape := make([]int, len(u.naxis))
	for i, n := range u.naxis {
		shape[len(u.naxis)-1-i] = n
	}
	return shape
}

// ElementType возвращает тег типа элемента массива по BITPIX.
// BSCALE/BZERO не применяются: тип отражает сырое хранение.
func (u *Unit) ElementType() ArrayType {
	return MapElementType(elemFromBitpix(u.bitpix))
}

// File — открытый FITS-файл: источник байтов и юниты в порядке следования.
// File не владеет источником, закрывает его вызывающая сторона.
type File struct {
	r     io.ReadSeeker
	Units []*Unit
}

// Open сканирует цепочку HDU, читая только заголовочные блоки.
// Возвращает ErrFormat при нарушении структуры карточек либо отсутствии
// обязательных ключей (SIMPLE/XTENSION, BITPIX, NAXIS, NAXISn).
func Open(r io.ReadSeeker) (*File, error) {
	f := &File{r: r}

	for {
		h, err := readHeader(r)
		if err == errEndOfFile {
			break
		}
		if err != nil {
			return nil, err
		}

		u, err := newUnit(len(f.Units), h)
		if err != nil {
			return nil, err
		}

		u.dataOffset, err = r.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, fmt.Errorf("seek to data segment: %w", err)
		}

		// Сегмент данных выровнен на размер блока; пропускаем его целиком.
		padded := (u.dataSize + blockSize - 1) / blockSize * blockSize
		if _, err := r.Seek(padded, io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("skip data segment of HDU %d: %w", u.Index, err)
		}

		f.Units = append(f.Units, u)
	}

	if len(f.Units) == 0 {
		return nil, fmt.Errorf("no HDUs found: %w", models.ErrFormat)
	}
	return f, nil
}

// newUnit валидирует обязательные ключи заголовка и вычисляет размер
// сегмента данных: |BITPIX|/8 * GCOUNT * (PCOUNT + Π NAXISn).
func newUnit(index int, h *header) (*Unit, error) {
	u := &Unit{
		Index:      index,
		HeaderText: h.text(),
	}

	if index == 0 {
		if _, ok := h.keys["SIMPLE"]; !ok {
			return nil, fmt.Errorf("primary header has no SIMPLE card: %w", models.ErrFormat)
		}
		u.Kind = Primary
		u.Name = "PRIMARY"
		if name, ok := h.stringKey("EXTNAME"); ok {
			u.Name = name
		}
	} else {
		xtension, ok := h.stringKey("XTENSION")
		if !ok {
			return nil, fmt.Errorf("extension header %d has no XTENSION card: %w", index, models.ErrFormat)
		}
		switch xtension {
		case "IMAGE":
			u.Kind = Image
		case "TABLE":
			u.Kind = Table
		case "BINTABLE":
			u.Kind = BinTable
		default:
			u.Kind = Unknown
		}
		u.Name, _ = h.stringKey("EXTNAME")
	}

	bitpix, ok := h.intKey("BITPIX")
	if !ok {
		return nil, fmt.Errorf("HDU %d has no BITPIX card: %w", index, models.ErrFormat)
	}
	switch bitpix {
	case 8, 16, 32, 64, -32, -64:
	default:
		return nil, fmt.Errorf("HDU %d has invalid BITPIX %d: %w", index, bitpix, models.ErrFormat)
	}
	u.bitpix = bitpix

	naxis, ok := h.intKey("NAXIS")
	if !ok || naxis < 0 {
		return nil, fmt.Errorf("HDU %d has missing or invalid NAXIS card: %w", index, models.ErrFormat)
	}
	u.naxis = make([]int, naxis)
	for i := 1; i <= naxis; i++ {
		n, ok := h.intKey(nth("NAXIS", i))
		if !ok {
			return nil, fmt.Errorf("HDU %d has no %s card: %w", index, nth("NAXIS", i), models.ErrFormat)
		}
		u.naxis[i-1] = n
	}

	// PCOUNT/GCOUNT обязательны в расширениях; в primary их обычно нет.
	pcount, ok := h.intKey("PCOUNT")
	if !ok {
		if index > 0 {
			return nil, fmt.Errorf("extension header %d has no PCOUNT card: %w", index, models.ErrFormat)
		}
		pcount = 0
	}
	gcount, ok := h.intKey("GCOUNT")
	if !ok {
		if index > 0 {
			return nil, fmt.Errorf("extension header %d has no GCOUNT card: %w", index, models.ErrFormat)
		}
		gcount = 1
	}

	elems := int64(1)
	for _, n := range u.naxis {
		elems *= int64(n)
	}
	if naxis == 0 {
		elems = 0
	}
	width := int64(u.bitpix)
	if width < 0 {
		width = -width
	}
	u.dataSize = width / 8 * int64(gcount) * (int64(pcount) + elems)

	return u, nil
}

// LoadRaw читает сегмент данных юнита целиком, в исходном big-endian
// порядке. Возвращает ErrNoData для юнитов без массива и ErrRange для
// индекса вне файла.
func (f *File) LoadRaw(index int) ([]byte, error) {
	if index < 0 || index >= len(f.Units) {
		return nil, fmt.Errorf("HDU index %d out of range (file has %d HDUs): %w", index, len(f.Units), models.ErrRange)
	}
	u := f.Units[index]
	if !u.HasData() {
		return nil, fmt.Errorf("HDU %d has no data: %w", index, models.ErrNoData)
	}

	if _, err := f.r.Seek(u.dataOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to data of HDU %d: %w", index, err)
	}
	raw := make([]byte, u.dataSize)
	if _, err := io.ReadFull(f.r, raw); err != nil {
		return nil, fmt.Errorf("data segment of HDU %d truncated: %w", index, models.ErrFormat)
	}
	return raw, nil
}
