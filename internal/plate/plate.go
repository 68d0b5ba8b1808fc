package plate

import (
	"regexp"
	"strings"
	"unicode"
)

// Таблицы соответствия визуально похожих символов. Определены ровно шесть
// пар: O/0, I/1, J/3, A/4, G/6, S/5. Таблицы взаимно обратимы для своих
// ключей, остальные буквы и цифры не преобразуются.
var (
	charToDigit = map[byte]byte{'O': '0', 'I': '1', 'J': '3', 'A': '4', 'G': '6', 'S': '5'}
	digitToChar = map[byte]byte{'0': 'O', '1': 'I', '3': 'J', '4': 'A', '6': 'G', '5': 'S'}
)

var (
	strictPattern = regexp.MustCompile(`([A-Z]{2})([0-9]{4})`)
	loosePattern  = regexp.MustCompile(`([A-Z]+)([0-9]{4})$`)
)

// parts — разобранный номер: буквенная часть и цифровая часть.
type parts struct {
	letters string
	digits  string
}

// clean убирает все пробельные символы и приводит текст к верхнему регистру.
func clean(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, raw)
}

// extractStrict ищет в плотной строке (без пробелов и дефисов) первое
// вхождение «две заглавные буквы и сразу четыре цифры».
func extractStrict(dense string) (parts, bool) {
	m := strictPattern.FindStringSubmatch(dense)
	if m == nil {
		return parts{}, false
	}
	return parts{letters: m[1], digits: m[2]}, true
}

// extractLoose разбирает номер с дефисом или с кодом региона без дефиса.
// Код региона любой длины отбрасывается: от буквенной части остаются
// последние два символа.
func extractLoose(text string) (parts, bool) {
	if strings.Contains(text, "-") {
		pieces := strings.Split(text, "-")
		if len(pieces) != 2 {
			return parts{}, false
		}
		letters := pieces[0]
		if len(letters) > 2 {
			letters = letters[len(letters)-2:]
		}
		return parts{letters: letters, digits: pieces[1]}, true
	}

	m := loosePattern.FindStringSubmatch(text)
	if m == nil {
		return parts{}, false
	}
	letters := m[1]
	if len(letters) > 2 {
		letters = letters[len(letters)-2:]
	}
	return parts{letters: letters, digits: m[2]}, true
}

// correctLetter обрабатывает символ буквенной позиции: ключ таблицы подмен
// прогоняется через обе таблицы и возвращается к буквенной форме.
func correctLetter(c byte) byte {
	if d, ok := charToDigit[c]; ok {
		return digitToChar[d]
	}
	return c
}

// correctDigit обрабатывает символ цифровой позиции. Сначала проверяется
// таблица цифра→буква (для её ключей прогон через обе таблицы возвращает тот
// же символ), затем таблица буква→цифра. Порядок веток сохранён из
// унаследованного поведения.
func correctDigit(c byte) byte {
	if l, ok := digitToChar[c]; ok {
		return charToDigit[l]
	}
	if d, ok := charToDigit[c]; ok {
		return d
	}
	return c
}

// Normalize приводит распознанный текст к каноническому виду LL-DDDD.
// Сначала ищется строгое совпадение, к которому таблицы подмен не
// применяются; иначе номер восстанавливается по таблицам. Текст, который не
// разбирается ни одним из способов, возвращается как есть (в верхнем
// регистре, без пробелов).
func Normalize(raw string) string {
	text := clean(raw)

	dense := strings.ReplaceAll(text, "-", "")
	if p, ok := extractStrict(dense); ok {
		return p.letters + "-" + p.digits
	}

	p, ok := extractLoose(text)
	if !ok {
		return text
	}

	var b strings.Builder
	b.Grow(len(p.letters) + 1 + len(p.digits))
	for i := 0; i < len(p.letters); i++ {
		b.WriteByte(correctLetter(p.letters[i]))
	}
	b.WriteByte('-')
	for i := 0; i < len(p.digits); i++ {
		b.WriteByte(correctDigit(p.digits[i]))
	}
	return b.String()
}

// CompliesFormat проверяет, что текст приводится к формату LL-DDDD: две
// буквы (или подменные цифры) и четыре цифры (или подменные буквы).
// Предикат ничего не изменяет и используется для фильтрации кандидатов.
func CompliesFormat(raw string) bool {
	p, ok := extractLoose(clean(raw))
	if !ok {
		return false
	}
	if len(p.letters) != 2 || len(p.digits) != 4 {
		return false
	}

	for i := 0; i < len(p.letters); i++ {
		c := p.letters[i]
		if c >= 'A' && c <= 'Z' {
			continue
		}
		if _, ok := digitToChar[c]; !ok {
			return false
		}
	}
	for i := 0; i < len(p.digits); i++ {
		c := p.digits[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if _, ok := charToDigit[c]; !ok {
			return false
		}
	}
	return true
}

// NormalizeLoose приводит номер к единому виду для хранения и поиска:
// без пробелов, без дефисов, в верхнем регистре.
func NormalizeLoose(raw string) string {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ToUpper(normalized)
	return normalized
}
