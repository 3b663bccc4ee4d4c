//go:build ignore

// Скрипт для генерации иконки исполняемого файла.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

const size = 32

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	path := filepath.Join(dir, "letter_d.ico")
	if err := generateIcon(path, color.RGBA{40, 110, 200, 255}); err != nil {
		log.Fatalf("Ошибка генерации %s: %v", path, err)
	}
	log.Printf("Создан: %s", path)
}

// generateIcon рисует букву D и сохраняет её как ICO с PNG внутри.
func generateIcon(path string, c color.RGBA) error {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Вертикальная черта
	for y := 6; y < 26; y++ {
		for x := 8; x < 12; x++ {
			img.Set(x, y, c)
		}
	}

	// Дуга: правая половина кольца с центром на черте
	cx, cy := 12.0, 16.0
	for y := 6; y < 26; y++ {
		for x := 12; x < 26; x++ {
			dx, dy := (float64(x)+0.5-cx)/13.0, (float64(y)+0.5-cy)/10.0
			d := dx*dx + dy*dy
			if d <= 1.0 && d >= 0.45 {
				img.Set(x, y, c)
			}
		}
	}

	// Горизонтальные перекладины
	for x := 8; x < 18; x++ {
		for _, y := range []int{6, 7, 24, 25} {
			img.Set(x, y, c)
		}
	}

	var pngData bytes.Buffer
	if err := png.Encode(&pngData, img); err != nil {
		return err
	}

	var ico bytes.Buffer
	// ICONDIR: reserved, type=1 (icon), count=1
	binary.Write(&ico, binary.LittleEndian, []uint16{0, 1, 1})
	// ICONDIRENTRY
	ico.Write([]byte{size, size, 0, 0})
	binary.Write(&ico, binary.LittleEndian, []uint16{1, 32})
	binary.Write(&ico, binary.LittleEndian, []uint32{uint32(pngData.Len()), 6 + 16})
	ico.Write(pngData.Bytes())

	return os.WriteFile(path, ico.Bytes(), 0644)
}
