package plate

import (
	"strings"

	"anpr-service/internal/ocr"
)

// ReadPlate сводит гипотезы OCR к одному результату. Гипотезы обходятся в
// порядке, в котором их вернул движок. Первая гипотеза со строгим
// совпадением возвращается сразу, без сравнения уверенностей с остальными.
// Иначе среди гипотез, проходящих CompliesFormat, выбирается та, чья
// уверенность строго выше текущего максимума: при равенстве остаётся более
// ранняя. Если подходящих гипотез нет, ok равен false.
func ReadPlate(hypotheses []ocr.Hypothesis) (text string, score float64, ok bool) {
	var (
		bestText  string
		bestScore float64
		found     bool
	)

	for _, h := range hypotheses {
		dense := strings.ReplaceAll(clean(h.Text), "-", "")
		if p, matched := extractStrict(dense); matched {
			return p.letters + "-" + p.digits, h.Confidence, true
		}

		if !CompliesFormat(h.Text) {
			continue
		}
		if h.Confidence > bestScore {
			bestText = Normalize(h.Text)
			bestScore = h.Confidence
			found = true
		}
	}

	if !found {
		return "", 0, false
	}
	return bestText, bestScore, true
}
