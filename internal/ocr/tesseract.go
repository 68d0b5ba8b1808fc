//go:build tesseract

package ocr

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// Фиксированная уверенность локального движка: Tesseract не отдаёт
// пословную уверенность через текстовый API.
const tesseractConfidence = 0.9

// TesseractEngine — локальный движок OCR на Tesseract. Клиент gosseract не
// потокобезопасен, поэтому вызовы сериализуются.
type TesseractEngine struct {
	mu sync.Mutex
}

func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{}
}

func (e *TesseractEngine) Detect(ctx context.Context, image []byte) ([]Hypothesis, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	client := gosseract.NewClient()
	defer client.Close()

	client.SetLanguage("eng")
	client.SetPageSegMode(gosseract.PSM_SINGLE_LINE)
	client.SetWhitelist("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-")

	tmpfile, err := os.CreateTemp("", "plate-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write(image); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	tmpfile.Close()

	if err := client.SetImage(tmpfile.Name()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	return []Hypothesis{{Text: text, Confidence: tesseractConfidence}}, nil
}
