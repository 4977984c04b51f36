package ingest

import (
	"regexp"
	"strings"
)

// Canonical field keys produced by header normalization.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldProductCode = "productCode"
	FieldPrice       = "price"
	FieldRating      = "rating"
	FieldReviewCount = "reviewCount"
	FieldViews       = "views"
	FieldTags        = "tags"
	FieldLink        = "link"
	FieldImageURL    = "imageUrl"
	FieldRestockable = "restockable"
	FieldStatus      = "status"
	FieldStock       = "stock"
	FieldCategoryL1  = "categoryL1"
	FieldCategoryL2  = "categoryL2"

	// FieldUpdatedAt is recognised so exported files re-import cleanly,
	// but the cell is discarded: updatedAt is always the write timestamp.
	FieldUpdatedAt = "updatedAt"
)

// headerAliases maps the lower-cased, whitespace- and parenthesis-stripped
// spelling of a column label to its canonical key. Labels come from the
// spreadsheet templates that circulate among staff, so Korean and English
// spellings are both accepted.
var headerAliases = map[string]string{
	"id": FieldID, "상품id": FieldID, "문서id": FieldID,
	"상품명": FieldName, "name": FieldName, "title": FieldName,
	"상품코드": FieldProductCode, "productcode": FieldProductCode, "code": FieldProductCode, "pdno": FieldProductCode,
	"가격": FieldPrice, "price": FieldPrice,
	"평점": FieldRating, "rating": FieldRating,
	"리뷰수": FieldReviewCount, "review": FieldReviewCount, "reviewcount": FieldReviewCount,
	"조회수": FieldViews, "views": FieldViews, "view": FieldViews,
	"태그": FieldTags, "tags": FieldTags,
	"링크": FieldLink, "url": FieldLink, "link": FieldLink,
	"이미지": FieldImageURL, "이미지url": FieldImageURL, "image": FieldImageURL, "imageurl": FieldImageURL, "thumbnail": FieldImageURL,
	"재입고": FieldRestockable, "restock": FieldRestockable, "restockable": FieldRestockable,
	"상태": FieldStatus, "status": FieldStatus,
	"재고": FieldStock, "stock": FieldStock, "재고수량": FieldStock,
	"대분류": FieldCategoryL1, "categoryl1": FieldCategoryL1, "category_l1": FieldCategoryL1, "lnb": FieldCategoryL1, "lnb1": FieldCategoryL1,
	"중분류": FieldCategoryL2, "categoryl2": FieldCategoryL2, "category_l2": FieldCategoryL2, "sub": FieldCategoryL2, "lnb2": FieldCategoryL2,
	"업데이트시각": FieldUpdatedAt, "updatedat": FieldUpdatedAt,
}

var (
	wsRe    = regexp.MustCompile(`\s+`)
	parenRe = regexp.MustCompile(`\([^)]*\)`)
)

// NormalizeHeader resolves one header cell to a canonical field key.
// Unrecognized labels pass through as their trimmed original text so a
// preview can show what the file actually carried; they are never merged
// into known fields.
func NormalizeHeader(h string) string {
	raw := strings.TrimSpace(h)
	canon := strings.ToLower(raw)
	canon = wsRe.ReplaceAllString(canon, "")
	canon = parenRe.ReplaceAllString(canon, "")
	if key, ok := headerAliases[canon]; ok {
		return key
	}
	return raw
}

// NormalizeHeaderRow resolves every cell of a header row.
func NormalizeHeaderRow(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = NormalizeHeader(c)
	}
	return out
}
