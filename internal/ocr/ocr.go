package ocr

import "context"

// Point — вершина четырёхугольника области текста.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Hypothesis — один вариант распознавания текста в области кадра.
type Hypothesis struct {
	Quad       [4]Point `json:"quad"`
	Text       string   `json:"text"`
	Confidence float64  `json:"confidence"`
}

// Engine — внешняя способность распознавания текста. Пустой срез и nil
// трактуются одинаково: текст не найден.
type Engine interface {
	Detect(ctx context.Context, image []byte) ([]Hypothesis, error)
}
