package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// GenerateSlug: "Котики и Собаки" → "kotiki-i-sobaki"
func GenerateSlug(input string) string {
	ascii := Transliterate(input)
	lower := strings.ToLower(ascii)
	hyphenated := strings.Join(strings.Fields(lower), "-")
	cleaned := slugInvalid.ReplaceAllString(hyphenated, "")
	normalized := slugDashes.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}

var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "i", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "iu", 'я': "ia",
}

// Transliterate chuyển ký tự Cyrillic sang Latin, giữ nguyên các ký tự khác
func Transliterate(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	for _, r := range input {
		lower := []rune(strings.ToLower(string(r)))[0]
		repl, ok := cyrillic[lower]
		if !ok {
			b.WriteRune(r)
			continue
		}
		if lower != r && repl != "" {
			repl = strings.ToUpper(repl[:1]) + repl[1:]
		}
		b.WriteString(repl)
	}

	return b.String()
}
