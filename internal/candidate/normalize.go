package candidate

import "strings"

// NormalizeName strips everything but letters and lowercases, so that
// "John  Smith" and "john-smith" compare equal.
func NormalizeName(name string) string {
	return strings.ToLower(lettersRe.ReplaceAllString(name, ""))
}

// NormalizePhone strips non-digits and keeps the last ten digits, dropping
// country prefixes.
func NormalizePhone(phone string) string {
	digits := digitsRe.ReplaceAllString(phone, "")
	if len(digits) > minPhoneDigits {
		digits = digits[len(digits)-minPhoneDigits:]
	}
	return digits
}

// NormalizeEmail lowercases and trims an email address for comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SimilarityRatio returns an edit-distance based similarity between two
// strings in the range [0, 1]. Identical strings score 1.
func SimilarityRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1
	}

	longest := max(len(a), len(b))
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
