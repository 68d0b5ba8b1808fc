package plate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"anpr-service/internal/ocr"
)

func hyp(text string, confidence float64) ocr.Hypothesis {
	return ocr.Hypothesis{Text: text, Confidence: confidence}
}

func TestReadPlateEmpty(t *testing.T) {
	_, _, ok := ReadPlate(nil)
	assert.False(t, ok)

	_, _, ok = ReadPlate([]ocr.Hypothesis{})
	assert.False(t, ok)
}

func TestReadPlateStrictMatchShortCircuits(t *testing.T) {
	// Гипотеза со строгим совпадением возвращается сразу, даже если до неё
	// была кандидатура с большей уверенностью
	text, score, ok := ReadPlate([]ocr.Hypothesis{
		hyp("KF-O617", 0.95),
		hyp("AB1234", 0.4),
	})
	assert.True(t, ok)
	assert.Equal(t, "AB-1234", text)
	assert.Equal(t, 0.4, score)
}

func TestReadPlateScanOrder(t *testing.T) {
	// Обход идёт в порядке движка: первое строгое совпадение побеждает,
	// оставшиеся гипотезы не рассматриваются
	text, score, ok := ReadPlate([]ocr.Hypothesis{
		hyp("XX9999", 0.5),
		hyp("AB1234", 0.9),
	})
	assert.True(t, ok)
	assert.Equal(t, "XX-9999", text)
	assert.Equal(t, 0.5, score)
}

func TestReadPlateBestConfidenceWins(t *testing.T) {
	text, score, ok := ReadPlate([]ocr.Hypothesis{
		hyp("KF-O617", 0.4),
		hyp("KF-O6I7", 0.8),
	})
	assert.True(t, ok)
	assert.Equal(t, "KF-0617", text)
	assert.Equal(t, 0.8, score)
}

func TestReadPlateTieKeepsEarlier(t *testing.T) {
	text, score, ok := ReadPlate([]ocr.Hypothesis{
		hyp("KF-O617", 0.8),
		hyp("GH-O123", 0.8),
	})
	assert.True(t, ok)
	assert.Equal(t, "KF-0617", text)
	assert.Equal(t, 0.8, score)
}

func TestReadPlateSkipsNonCompliant(t *testing.T) {
	text, score, ok := ReadPlate([]ocr.Hypothesis{
		hyp("SNOW", 0.99),
		hyp("KF-O617", 0.3),
	})
	assert.True(t, ok)
	assert.Equal(t, "KF-0617", text)
	assert.Equal(t, 0.3, score)
}

func TestReadPlateNoCandidates(t *testing.T) {
	_, _, ok := ReadPlate([]ocr.Hypothesis{
		hyp("SNOW", 0.99),
		hyp("??", 0.5),
	})
	assert.False(t, ok)
}

func TestReadPlateZeroConfidenceNotTracked(t *testing.T) {
	// Унаследованное поведение: кандидатура должна строго превысить
	// текущий максимум, стартующий с нуля
	_, _, ok := ReadPlate([]ocr.Hypothesis{
		hyp("KF-O617", 0),
	})
	assert.False(t, ok)
}
