package fitstest

import (
	"encoding/binary"
	"math"
)

// Кодировщики значений в big-endian (порядок хранения FITS) и декодеры
// little-endian (порядок ответа slice-эндпоинта).

func EncodeFloat32(vals []float32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func EncodeFloat64(vals []float64) []byte {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

func EncodeInt16(vals []int16) []byte {
	buf := make([]byte, 2*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint16(buf[i*2:], uint16(v))
	}
	return buf
}

func EncodeInt32(vals []int32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint32(buf[i*4:], uint32(v))
	}
	return buf
}

func DecodeFloat32LE(buf []byte) []float32 {
	vals := make([]float32, len(buf)/4)
	for i := range vals {
		vals[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return vals
}

func DecodeFloat64LE(buf []byte) []float64 {
	vals := make([]float64, len(buf)/8)
	for i := range vals {
		vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return vals
}

func DecodeInt16LE(buf []byte) []int16 {
	vals := make([]int16, len(buf)/2)
	for i := range vals {
		vals[i] = int16(binary.LittleEndian.Uint16(buf[i*2:]))
	}
	return vals
}

// Float32Seq возвращает [0, 1, ..., n-1] — аналог arange из сценариев тестов.
func Float32Seq(n int) []float32 {
	vals := make([]float32, n)
	for i := range vals {
		vals[i] = float32(i)
	}
	return vals
}

// Int16Seq возвращает [0, 1, ..., n-1].
func Int16Seq(n int) []int16 {
	vals := make([]int16, n)
	for i := range vals {
		vals[i] = int16(i)
	}
	return vals
}
