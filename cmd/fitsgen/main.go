package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/joseph-long/jupyterlab-fitsview/internal/fitstest"
)

// main генерирует набор эталонных FITS-файлов для ручной проверки сервиса:
// 2D/3D/4D изображения разных типов, файл без изображений и файлы с
// несколькими расширениями.
func main() {
	dest := flag.String("dest", "./testdata", "destination directory")
	seed := flag.Int64("seed", 0, "prng seed")
	flag.Parse()

	if err := os.MkdirAll(*dest, 0o755); err != nil {
		log.Fatal(err)
	}
	rng := rand.New(rand.NewSource(*seed))

	files := map[string][]byte{
		"simple_2d.fits": fitstest.Build(fitstest.HDU{
			Bitpix: -64,
			Shape:  []int{16, 16},
			Data:   fitstest.EncodeFloat64(randFloat64(rng, 16*16)),
		}),
		"simple_2d_ints.fits": fitstest.Build(fitstest.HDU{
			Bitpix: 16,
			Shape:  []int{16, 16},
			Data:   fitstest.EncodeInt16(randInt16(rng, 16*16)),
		}),
		"simple_3d.fits": fitstest.Build(fitstest.HDU{
			Bitpix: -32,
			Shape:  []int{5, 16, 16},
			Data:   fitstest.EncodeFloat32(randFloat32(rng, 5*16*16)),
		}),
		"simple_4d.fits": fitstest.Build(fitstest.HDU{
			Bitpix: -32,
			Shape:  []int{4, 5, 16, 16},
			Data:   fitstest.EncodeFloat32(randFloat32(rng, 4*5*16*16)),
		}),
		"no_image.fits": fitstest.Build(
			fitstest.HDU{Bitpix: 8},
			fitstest.BinTable("TABLE", 10, 16),
		),
		"multi_ext.fits": fitstest.Build(
			fitstest.HDU{Bitpix: 8},
			fitstest.HDU{
				XTension: "IMAGE",
				Name:     "FOURDEE",
				Bitpix:   -32,
				Shape:    []int{4, 5, 16, 16},
				Data:     fitstest.EncodeFloat32(randFloat32(rng, 4*5*16*16)),
			},
			fitstest.BinTable("TABLE", 10, 16),
		),
	}

	for name, data := range files {
		if err := os.WriteFile(filepath.Join(*dest, name), data, 0o644); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (%d bytes)", name, len(data))
	}
}

func randFloat64(rng *rand.Rand, n int) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = rng.Float64()
	}
	return vals
}

func randFloat32(rng *rand.Rand, n int) []float32 {
	vals := make([]float32, n)
	for i := range vals {
		vals[i] = rng.Float32()
	}
	return vals
}

func randInt16(rng *rand.Rand, n int) []int16 {
	vals := make([]int16, n)
	for i := range vals {
		vals[i] = int16(rng.Intn(1000))
	}
	return vals
}
