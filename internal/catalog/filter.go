package catalog

import (
	"strings"

	"github.com/Holly45vd/products/internal/ingest"
	"github.com/Holly45vd/products/internal/model"
)

// FacetMode selects how the chosen facet L1 values shape the result set.
type FacetMode string

const (
	// FacetInclude restricts results to the chosen L1 values.
	FacetInclude FacetMode = "include"
	// FacetExclude removes the chosen L1 values from the results.
	FacetExclude FacetMode = "exclude"
)

// FacetUnspecified labels products with no categoryL1 in facet counts.
const FacetUnspecified = "(미지정)"

// Filter is the complete filter state. Dimensions are independent and
// combine by logical AND.
type Filter struct {
	Query          string
	CategoryL1     string
	CategoryL2     string
	TagQuery       string
	OnlySaved      bool
	ExcludeRestock bool
	FacetMode      FacetMode
	FacetL1s       []string
}

// FacetCount is one categoryL1 bucket over the tag-search result set.
type FacetCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Apply computes the visible subset of products for the filter state. The
// result preserves the order of the input list; saved is the caller's
// saved-id set and may be nil, in which case OnlySaved is a no-op.
func Apply(items []model.Product, f Filter, saved map[string]struct{}) []model.Product {
	tagTokens := lowerTokens(f.TagQuery)
	query := strings.ToLower(strings.TrimSpace(f.Query))
	facetSet := facetSet(f)

	out := make([]model.Product, 0, len(items))
	for _, p := range items {
		if f.OnlySaved && saved != nil {
			if _, ok := saved[p.ID]; !ok {
				continue
			}
		}
		if f.CategoryL1 != "" && p.CategoryL1 != f.CategoryL1 {
			continue
		}
		if f.CategoryL2 != "" && p.CategoryL2 != f.CategoryL2 {
			continue
		}
		if !matchesTags(p, tagTokens) {
			continue
		}
		if !matchesQuery(p, query) {
			continue
		}
		if f.ExcludeRestock && IsRestockPending(p) {
			continue
		}
		if facetSet != nil && len(tagTokens) > 0 {
			label := p.CategoryL1
			if label == "" {
				label = FacetUnspecified
			}
			_, chosen := facetSet[label]
			if f.FacetMode == FacetInclude && !chosen {
				continue
			}
			if f.FacetMode == FacetExclude && chosen {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Facets groups the tag- and search-filtered subset (deliberately NOT the
// category-dropdown-filtered one) by categoryL1 and counts. Facets are only
// meaningful while a tag filter is active; with no tag tokens the result is
// nil. Buckets appear in first-seen list order.
func Facets(items []model.Product, f Filter) []FacetCount {
	tagTokens := lowerTokens(f.TagQuery)
	if len(tagTokens) == 0 {
		return nil
	}
	query := strings.ToLower(strings.TrimSpace(f.Query))

	counts := make(map[string]int)
	var order []string
	for _, p := range items {
		if !matchesTags(p, tagTokens) || !matchesQuery(p, query) {
			continue
		}
		label := p.CategoryL1
		if label == "" {
			label = FacetUnspecified
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	out := make([]FacetCount, 0, len(order))
	for _, label := range order {
		out = append(out, FacetCount{Label: label, Count: counts[label]})
	}
	return out
}

// matchesQuery does a lower-cased substring match against a haystack of
// name, product code, both category labels and the joined tags.
func matchesQuery(p model.Product, query string) bool {
	if query == "" {
		return true
	}
	parts := make([]string, 0, 4+len(p.Tags))
	for _, s := range []string{p.Name, p.ProductCode, p.CategoryL1, p.CategoryL2} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	parts = append(parts, p.Tags...)
	hay := strings.ToLower(strings.Join(parts, " "))
	return strings.Contains(hay, query)
}

// matchesTags requires every filter token to be present in the product's
// tag set (AND semantics, case-insensitive).
func matchesTags(p model.Product, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(p.Tags))
	for _, t := range p.Tags {
		set[strings.ToLower(t)] = struct{}{}
	}
	for _, tok := range tokens {
		if _, ok := set[tok]; !ok {
			return false
		}
	}
	return true
}

func lowerTokens(tagQuery string) []string {
	tokens := ingest.TokenizeTags(tagQuery)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}
	return tokens
}

func facetSet(f Filter) map[string]struct{} {
	if f.FacetMode == "" || len(f.FacetL1s) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(f.FacetL1s))
	for _, l := range f.FacetL1s {
		set[l] = struct{}{}
	}
	return set
}
