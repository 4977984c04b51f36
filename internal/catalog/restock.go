package catalog

import (
	"regexp"
	"strings"

	"github.com/Holly45vd/products/internal/model"
)

// restockRe matches the "pending restock" phrase with or without internal
// spacing.
var restockRe = regexp.MustCompile(`재입고\s*예정`)

// IsRestockPending reports whether a product is temporarily unorderable. It
// is true when either legacy boolean marker is set, or when the restock
// phrase appears anywhere across tags, badges, labels, status or badge-text
// fields. Derived on every call; the source fields may change between
// reads, so the result must never be cached.
func IsRestockPending(p model.Product) bool {
	if p.RestockPending || p.RestockSoon {
		return true
	}
	return hasRestockKeyword(strings.Join(p.Tags, " ")) ||
		hasRestockKeyword(strings.Join(p.Badges, " ")) ||
		hasRestockKeyword(strings.Join(p.Labels, " ")) ||
		hasRestockKeyword(p.Status) ||
		hasRestockKeyword(p.NameBadge) ||
		hasRestockKeyword(p.BadgeText)
}

func hasRestockKeyword(s string) bool {
	return s != "" && restockRe.MatchString(s)
}
