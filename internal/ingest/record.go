package ingest

import "strings"

// Record is one candidate product parsed from a data row. Only fields the
// row actually defined are set: strings stay "" and pointers stay nil when
// the column was absent or blank, so a downstream merge upsert never
// overwrites a stored value with an empty one. ID is the single hard
// requirement.
type Record struct {
	ID          string   `json:"id"`
	Name        string   `json:"name,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Link        string   `json:"link,omitempty"`
	ProductCode string   `json:"productCode,omitempty"`
	Status      string   `json:"status,omitempty"`
	CategoryL1  string   `json:"categoryL1,omitempty"`
	CategoryL2  string   `json:"categoryL2,omitempty"`
	Price       *int64   `json:"price,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"reviewCount,omitempty"`
	Views       *int     `json:"views,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Restockable *bool    `json:"restockable,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	// Extra keeps cells under unrecognized headers, for preview/debugging
	// only. They are never written to the store.
	Extra map[string]string `json:"extra,omitempty"`
}

// Records maps a parsed grid (header row first) to product records. Rows
// that yield no id (neither an id column nor a productCode fallback) are
// dropped and counted, never fatal. A grid with no data rows yields an empty
// slice.
func Records(grid [][]string) (records []Record, skipped int) {
	if len(grid) == 0 {
		return nil, 0
	}
	header := NormalizeHeaderRow(grid[0])

	for _, row := range grid[1:] {
		fields := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(row) {
				fields[key] = row[i]
			} else {
				fields[key] = ""
			}
		}

		rec, ok := rowToRecord(fields)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}

// ParseRecords parses raw text and maps it in one step.
func ParseRecords(text string) ([]Record, int) {
	return Records(Parse(text))
}

func rowToRecord(fields map[string]string) (Record, bool) {
	id := Clean(fields[FieldID])
	if id == "" {
		id = Clean(fields[FieldProductCode])
	}
	if id == "" {
		return Record{}, false
	}

	rec := Record{
		ID:          id,
		Name:        Clean(fields[FieldName]),
		ImageURL:    Clean(fields[FieldImageURL]),
		Link:        Clean(fields[FieldLink]),
		ProductCode: Clean(fields[FieldProductCode]),
		CategoryL1:  Clean(fields[FieldCategoryL1]),
		CategoryL2:  Clean(fields[FieldCategoryL2]),
	}

	has := func(key string) (string, bool) {
		v, ok := fields[key]
		return v, ok && v != ""
	}

	if v, ok := has(FieldPrice); ok {
		if p, found := ParsePrice(v); found {
			rec.Price = &p
		}
	}
	if v, ok := has(FieldRating); ok {
		r := ParseRating(v)
		rec.Rating = &r
	}
	if v, ok := has(FieldReviewCount); ok {
		n := ParseCount(v)
		rec.ReviewCount = &n
	}
	if v, ok := has(FieldViews); ok {
		n := ParseCount(v)
		rec.Views = &n
	}
	if v, ok := has(FieldStock); ok {
		if s, found := ParseStock(v); found {
			rec.Stock = &s
		}
	}
	if v, ok := has(FieldRestockable); ok {
		b := ParseBool(v)
		rec.Restockable = &b
	}
	if v, ok := has(FieldStatus); ok {
		rec.Status = Clean(v)
	}
	if v, ok := has(FieldTags); ok {
		if tags := TokenizeTags(v); len(tags) > 0 {
			rec.Tags = tags
		}
	}

	for key, v := range fields {
		if !knownField(key) && v != "" {
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[key] = strings.TrimSpace(v)
		}
	}

	return rec, true
}

func knownField(key string) bool {
	switch key {
	case FieldID, FieldName, FieldProductCode, FieldPrice, FieldRating,
		FieldReviewCount, FieldViews, FieldTags, FieldLink, FieldImageURL,
		FieldRestockable, FieldStatus, FieldStock, FieldCategoryL1, FieldCategoryL2,
		FieldUpdatedAt:
		return true
	}
	return false
}
