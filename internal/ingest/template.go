package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Holly45vd/products/internal/model"
)

// CanonicalHeaders is the fixed header row for the upload template and for
// exports, in the Korean labels staff spreadsheets use.
var CanonicalHeaders = []string{
	"상품ID",
	"상품명",
	"상품코드",
	"가격",
	"평점",
	"리뷰수",
	"조회수",
	"태그",
	"링크",
	"이미지URL",
	"재입고",
	"상태",
	"재고",
	"대분류(categoryL1)",
	"중분류(categoryL2)",
}

// TemplateFilename is the suggested download name for the template file.
const TemplateFilename = "상품_업데이트_템플릿.csv"

// Template produces the header-only upload template, BOM-prefixed so
// spreadsheet applications pick up the UTF-8 encoding.
func Template() []byte {
	return []byte(bom + strings.Join(CanonicalHeaders, ",") + "\r\n")
}

var escapeNeededRe = regexp.MustCompile(`[",\n\r]`)

func csvEscape(v string) string {
	if escapeNeededRe.MatchString(v) {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}

// Export renders a product list as a BOM-prefixed CSV using the canonical
// headers. Tags are joined with " | " for readability in spreadsheets.
func Export(products []model.Product) []byte {
	var b strings.Builder
	b.WriteString(bom)

	cells := make([]string, len(CanonicalHeaders))
	for i, h := range CanonicalHeaders {
		cells[i] = csvEscape(h)
	}
	b.WriteString(strings.Join(cells, ","))
	b.WriteString("\r\n")

	for _, p := range products {
		row := []string{
			p.ID,
			p.Name,
			p.ProductCode,
			numOrEmpty(p.Price),
			ratingOrEmpty(p.Rating),
			numOrEmpty(int64(p.ReviewCount)),
			numOrEmpty(int64(p.Views)),
			strings.Join(p.Tags, " | "),
			p.Link,
			p.ImageURL,
			boolOrEmpty(p.Restockable),
			p.Status,
			numOrEmpty(int64(p.Stock)),
			p.CategoryL1,
			p.CategoryL2,
		}
		for i, c := range row {
			row[i] = csvEscape(c)
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}

func numOrEmpty(n int64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

func ratingOrEmpty(r float64) string {
	if r == 0 {
		return ""
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func boolOrEmpty(b bool) string {
	if !b {
		return ""
	}
	return "true"
}
