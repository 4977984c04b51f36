package ingest

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	cleanWsRe    = regexp.MustCompile(`\s+`)
	countNoiseRe = regexp.MustCompile(`[\s,()보기]`)
	manRe        = regexp.MustCompile(`([\d.]+)만`)
	cheonRe      = regexp.MustCompile(`([\d.]+)천`)
	numRe        = regexp.MustCompile(`[\d.]+`)
	nonNumRe     = regexp.MustCompile(`[^\d.]`)
	nonDigitRe   = regexp.MustCompile(`[^\d-]`)
	tagSplitRe   = regexp.MustCompile(`[,|#/ ]+`)
	trueRe       = regexp.MustCompile(`(?i)^(true|1|예|y)$`)
)

// Clean collapses runs of whitespace, strips a leading/trailing double quote
// and trims the result.
func Clean(s string) string {
	s = cleanWsRe.ReplaceAllString(s, " ")
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}

// ParseCount reads a count-like cell ("1.2만 보기", "3,400", "5천"). The
// Korean magnitude suffixes 만 (x10,000) and 천 (x1,000) multiply the number
// in front of them, rounded to the nearest integer. Without a suffix the
// first numeric token wins; without any digit the count is 0.
func ParseCount(text string) int {
	t := countNoiseRe.ReplaceAllString(text, "")
	if t == "" {
		return 0
	}
	if m := manRe.FindStringSubmatch(t); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(math.Round(f * 10000))
		}
	}
	if m := cheonRe.FindStringSubmatch(t); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(math.Round(f * 1000))
		}
	}
	if m := numRe.FindString(t); m != "" {
		if f, err := strconv.ParseFloat(m, 64); err == nil {
			return int(math.Round(f))
		}
	}
	return 0
}

// ParsePrice strips everything but digits and the decimal point. The second
// return is false when the cell carried no number at all.
func ParsePrice(text string) (int64, bool) {
	n := nonNumRe.ReplaceAllString(text, "")
	if n == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return 0, false
	}
	return int64(f), true
}

// ParseRating strips non-numeric characters and parses a float; a cell with
// no parseable number rates 0.
func ParseRating(text string) float64 {
	n := nonNumRe.ReplaceAllString(text, "")
	f, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseStock strips everything but digits and a minus sign. The second
// return is false when no number remains.
func ParseStock(text string) (int, bool) {
	n := nonDigitRe.ReplaceAllString(text, "")
	if n == "" || n == "-" {
		return 0, false
	}
	v, err := strconv.Atoi(n)
	if err != nil {
		return 0, false
	}
	return v, true
}

// TokenizeTags splits tag input on any run of comma, pipe, hash, slash or
// space, trims the tokens and de-duplicates them case-insensitively while
// preserving first-seen order. Tokenizing an already tokenized,
// comma-rejoined string yields the same set.
func TokenizeTags(input string) []string {
	parts := tagSplitRe.Split(input, -1)
	seen := make(map[string]struct{}, len(parts))
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		key := strings.ToLower(p)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

// ParseBool recognises the fixed true-token set (true, 1, 예, y,
// case-insensitive); everything else is false.
func ParseBool(text string) bool {
	return trueRe.MatchString(strings.TrimSpace(text))
}
