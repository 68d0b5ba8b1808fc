package plate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStrictMatch(t *testing.T) {
	// Строгое совпадение возвращается без применения таблиц подмен
	tests := []struct {
		input    string
		expected string
	}{
		{"AB1234", "AB-1234"},
		{"AB-1234", "AB-1234"},
		{"ab 1234", "AB-1234"},
		{"KF7617", "KF-7617"},
		{"NWKF7617", "KF-7617"},
		{"NW KF-7617", "KF-7617"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestNormalizeConfusableDigits(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"KF-O617", "KF-0617"},
		{"KF-O6I7", "KF-0617"},
		{"KF-061S", "KF-0615"},
		{"NWKF-O617", "KF-0617"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestNormalizePassThrough(t *testing.T) {
	// Неразбираемый текст возвращается как есть: в верхнем регистре,
	// без пробелов
	tests := []struct {
		input    string
		expected string
	}{
		{"ABCD", "ABCD"},
		{"AB-CD-12", "AB-CD-12"},
		{"abcd efg", "ABCDEFG"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestNormalizeLetterPositionsKeepConfusableDigits(t *testing.T) {
	// Унаследованное поведение: подменная цифра на буквенной позиции не
	// превращается в букву. CompliesFormat такой текст пропускает, а
	// коррекция буквенной части для цифровых ключей не срабатывает.
	assert.True(t, CompliesFormat("01-7617"))
	assert.Equal(t, "01-7617", Normalize("01-7617"))
}

func TestNormalizeDigitCorrectionBranchOrder(t *testing.T) {
	// Цифровая позиция: ключ таблицы цифра→буква проходит через обе таблицы
	// и остаётся самим собой, подменная буква берётся из таблицы буква→цифра
	assert.Equal(t, "KF-0617", Normalize("KF-O617"))
	assert.Equal(t, "KF-3615", Normalize("KF-J61S"))
}

func TestCompliesFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"KF-7617", true},
		{"KF7617", true},
		{"NWKF7617", true},
		{"NWKF-7617", true},
		{"KF-O617", true},
		{"KF-O6I7", true},
		{"ABCD", false},
		{"AB-CD-12", false},
		{"KF-761", false},
		{"KF-76175", false},
		{"K-7617", false},
		{"2F-7617", false},
		{"KF-761Z", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CompliesFormat(tt.input), "input %q", tt.input)
	}
}

func TestConfusionTablesRoundTrip(t *testing.T) {
	assert.Len(t, charToDigit, 6)
	assert.Len(t, digitToChar, 6)

	for c, d := range charToDigit {
		assert.Equal(t, c, digitToChar[d], "char %q", string(c))
	}
	for d, c := range digitToChar {
		assert.Equal(t, d, charToDigit[c], "digit %q", string(d))
	}
}

func TestNormalizeLoose(t *testing.T) {
	assert.Equal(t, "KF7617", NormalizeLoose(" kf-76 17 "))
	assert.Equal(t, "", NormalizeLoose("   "))
}
