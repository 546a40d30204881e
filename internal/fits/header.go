package fits

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joseph-long/jupyterlab-fitsview/internal/models"
)

const (
	blockSize     = 2880 // стандартный размер блока FITS
	cardSize      = 80   // одна карточка заголовка
	cardsPerBlock = blockSize / cardSize
)

// header — результат разбора одной заголовочной секции.
// cards хранит карточки дословно (по 80 символов, без END и хвостовых
// пустых карточек): комментарии, HISTORY и дубликаты ключей сохраняются
// как есть. keys — разобранные значения, последний дубликат выигрывает.
type header struct {
	keys  map[string]any
	cards []string
}

// errEndOfFile сигнализирует чистый конец файла на границе юнитов.
var errEndOfFile = fmt.Errorf("end of FITS stream")

// readHeader читает заголовочные блоки по 2880 байт до карточки END
// включительно. Возвращает errEndOfFile, если поток закончился ровно на
// границе юнита, и ErrFormat — при нарушении блочной структуры.
func readHeader(r io.Reader) (*header, error) {
	h := &header{keys: make(map[string]any, 50)}
	buf := make([]byte, blockSize)
	first := true

	for {
		n, err := io.ReadFull(r, buf)
		if err == io.EOF && n == 0 && first {
			return nil, errEndOfFile
		}
		if err != nil {
			return nil, fmt.Errorf("header block truncated (%d of %d bytes): %w", n, blockSize, models.ErrFormat)
		}
		first = false

		done, err := h.parseBlock(buf)
		if err != nil {
			return nil, err
		}
		if done {
			return h, nil
		}
	}
}

// parseBlock разбирает 36 карточек одного блока. Возвращает true после END.
func (h *header) parseBlock(buf []byte) (bool, error) {
	for i := 0; i < cardsPerBlock; i++ {
		card := string(buf[i*cardSize : (i+1)*cardSize])
		key := strings.TrimRight(card[:8], " ")

		if key == "END" {
			return true, nil
		}

		h.cards = append(h.cards, card)

		// Стандарт строг к позиции знака '=': только "key= value"-карточки
		// несут значение, остальное (COMMENT, HISTORY, пустые) — текст.
		if card[8:10] != "= " {
			if key != "" {
				h.keys[key] = nil
			}
			continue
		}

		value, err := parseCardValue(card[10:])
		if err != nil {
			return false, fmt.Errorf("card %q: %v: %w", strings.TrimRight(card, " "), err, models.ErrFormat)
		}
		h.keys[key] = value
	}
	return false, nil
}

// parseCardValue разбирает поле значения карточки: строку в одинарных
// кавычках, логические T/F либо число. Комментарий после '/' отбрасывается.
func parseCardValue(s string) (any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if s[0] == '\'' {
		return parseQuotedString(s)
	}

	if j := strings.Index(s, "/"); j != -1 {
		s = strings.TrimSpace(s[:j])
	}
	if s == "" {
		return nil, nil
	}

	switch s[0] {
	case 'T':
		return true, nil
	case 'F':
		return false, nil
	}

	if strings.ContainsAny(s, ".DE") {
		// FITS допускает экспоненту в форме D; ParseFloat понимает только E.
		v, err := strconv.ParseFloat(strings.Replace(s, "D", "E", 1), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed real value %q", s)
		}
		return v, nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed integer value %q", s)
	}
	return int(v), nil
}

// parseQuotedString обрабатывает строковое значение с экранированием
// одинарной кавычки удвоением (машина из трёх состояний, как в эталонном
// разборе FITS-заголовков).
func parseQuotedString(s string) (string, error) {
	var buf bytes.Buffer
	state := 0
	for _, ch := range s {
		quote := ch == '\''
		switch state {
		case 0:
			if !quote {
				return "", fmt.Errorf("string value does not start with a quote")
			}
			state = 1
		case 1:
			if quote {
				state = 2
			} else {
				buf.WriteRune(ch)
			}
		case 2:
			if quote {
				buf.WriteRune(ch)
				state = 1
			} else {
				return strings.TrimRight(buf.String(), " "), nil
			}
		}
	}
	if state == 2 {
		// закрывающая кавычка стояла последним символом карточки
		return strings.TrimRight(buf.String(), " "), nil
	}
	return "", fmt.Errorf("unterminated string value")
}

// text возвращает заголовок дословно: карточки по 80 колонок, объединённые
// переводом строки, без END.
func (h *header) text() string {
	return strings.Join(h.cards, "\n")
}

// intKey возвращает целочисленное значение ключа.
func (h *header) intKey(key string) (int, bool) {
	v, ok := h.keys[key].(int)
	return v, ok
}

// stringKey возвращает строковое значение ключа.
func (h *header) stringKey(key string) (string, bool) {
	v, ok := h.keys[key].(string)
	return v, ok
}

// nth собирает индексированное имя ключа: nth("NAXIS", 2) == "NAXIS2".
func nth(prefix string, n int) string {
	return prefix + strconv.Itoa(n)
}
