// Package fitstest собирает FITS-файлы в памяти для тестов и утилиты
// fitsgen: заголовки из 80-колоночных карточек, блочное выравнивание на
// 2880 байт, big-endian данные. Писать FITS сервис не умеет и не должен,
// поэтому генератор живёт отдельно от ядра чтения.
package fitstest

import (
	"fmt"
	"strings"
)

const (
	blockSize = 2880
	cardSize  = 80
)

// HDU описывает один юнит собираемого файла.
// Shape задаётся от внешней оси к внутренней (как в API сервиса) и
// разворачивается в NAXISn при сборке. Data — big-endian байты массива без
// выравнивания; nil означает нули.
type HDU struct {
	XTension string // "" — primary, иначе IMAGE/TABLE/BINTABLE/...
	Name     string // EXTNAME; пустое — карточка не пишется
	Bitpix   int
	Shape    []int
	Data     []byte
	Extra    []string // дополнительные готовые карточки
}

// Build собирает готовый FITS-файл из юнитов.
func Build(hdus ...HDU) []byte {
	var out []byte
	for i, h := range hdus {
		out = append(out, h.headerBlocks(i == 0)...)
		out = append(out, h.dataBlocks()...)
	}
	return out
}

func (h HDU) headerBlocks(primary bool) []byte {
	var cards []string

	if primary {
		cards = append(cards, BoolCard("SIMPLE", true, "conforms to FITS standard"))
	} else {
		cards = append(cards, StringCard("XTENSION", h.XTension, "extension type"))
	}
	cards = append(cards,
		IntCard("BITPIX", h.Bitpix, "array data type"),
		IntCard("NAXIS", len(h.Shape), "number of array dimensions"),
	)
	// NAXIS1 — внутренняя (самая быстрая) ось.
	for i := 0; i < len(h.Shape); i++ {
		cards = append(cards, IntCard(fmt.Sprintf("NAXIS%d", i+1), h.Shape[len(h.Shape)-1-i], ""))
	}
	if !primary {
		cards = append(cards,
			IntCard("PCOUNT", 0, "number of group parameters"),
			IntCard("GCOUNT", 1, "number of groups"),
		)
	}
	if h.Name != "" {
		cards = append(cards, StringCard("EXTNAME", h.Name, "extension name"))
	}
	cards = append(cards, h.Extra...)
	cards = append(cards, pad("END", cardSize))

	buf := []byte(strings.Join(cards, ""))
	return padBlock(buf, ' ')
}

func (h HDU) dataBlocks() []byte {
	size := h.dataSize()
	if size == 0 {
		return nil
	}
	buf := make([]byte, size)
	copy(buf, h.Data)
	return padBlock(buf, 0)
}

func (h HDU) dataSize() int {
	if len(h.Shape) == 0 {
		return 0
	}
	n := 1
	for _, d := range h.Shape {
		n *= d
	}
	w := h.Bitpix
	if w < 0 {
		w = -w
	}
	return n * w / 8
}

// BinTable возвращает минимальный валидный BINTABLE-юнит с rows строками по
// rowBytes байт. Содержимое ячеек тестам не важно — сервис таблицы не режет.
func BinTable(name string, rows, rowBytes int) HDU {
	return HDU{
		XTension: "BINTABLE",
		Name:     name,
		Bitpix:   8,
		Shape:    []int{rows, rowBytes},
		Extra: []string{
			IntCard("TFIELDS", 1, "number of table fields"),
			StringCard("TFORM1", fmt.Sprintf("%dA", rowBytes), ""),
			StringCard("TTYPE1", "DATA", ""),
		},
	}
}

// IntCard форматирует карточку с целочисленным значением (значение прижато
// вправо к 30-й колонке, как требует стандарт для фиксированного формата).
func IntCard(key string, v int, comment string) string {
	return valueCard(key, fmt.Sprintf("%20d", v), comment)
}

// BoolCard форматирует логическую карточку (T/F в 30-й колонке).
func BoolCard(key string, v bool, comment string) string {
	ch := "T"
	if !v {
		ch = "F"
	}
	return valueCard(key, fmt.Sprintf("%20s", ch), comment)
}

// StringCard форматирует строковую карточку: значение в одинарных кавычках,
// дополненное пробелами минимум до восьми символов.
func StringCard(key, v, comment string) string {
	quoted := fmt.Sprintf("'%-8s'", v)
	return valueCard(key, fmt.Sprintf("%-20s", quoted), comment)
}

// CommentCard форматирует карточку без значения (COMMENT, HISTORY и т.п.).
func CommentCard(key, text string) string {
	return pad(fmt.Sprintf("%-8s%s", key, text), cardSize)
}

func valueCard(key, value, comment string) string {
	s := fmt.Sprintf("%-8s= %s", key, value)
	if comment != "" {
		s += " / " + comment
	}
	return pad(s, cardSize)
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	return s + strings.Repeat(" ", n-len(s))
}

func padBlock(buf []byte, fill byte) []byte {
	rem := len(buf) % blockSize
	if rem == 0 {
		return buf
	}
	tail := make([]byte, blockSize-rem)
	if fill != 0 {
		for i := range tail {
			tail[i] = fill
		}
	}
	return append(buf, tail...)
}
