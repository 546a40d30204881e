package models

import "errors"

// Сентинельные ошибки ядра. Обработчики мапят их на HTTP-статусы через
// pkg/httperrors, поэтому новые категории добавляются только здесь.
var (
	ErrNotFound = errors.New("file not found")
	ErrParse    = errors.New("invalid slice syntax")
	ErrRange    = errors.New("out of range")
	ErrNoData   = errors.New("no array data")
	ErrFormat   = errors.New("invalid FITS structure")
)
