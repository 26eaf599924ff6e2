package railid

// romanValues covers the numerals the upstream uses in platform strings.
var romanValues = map[rune]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// ParseRoman decodes a roman numeral by the standard subtractive rules.
// Non-roman characters are ignored, so platform strings like "Ia" or "III "
// decode to their numeric part. Returns 0 for input without any numerals.
func ParseRoman(s string) int {
	total := 0
	prev := 0
	for _, r := range s {
		v, ok := romanValues[r]
		if !ok {
			continue
		}
		total += v
		if prev < v {
			// Subtractive pair: the previous numeral was already added,
			// so remove it twice (IV = -1 + 5).
			total -= 2 * prev
		}
		prev = v
	}
	return total
}
