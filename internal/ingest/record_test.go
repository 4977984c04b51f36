package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Korean id label", input: "상품ID", expected: FieldID},
		{name: "Document id label", input: "문서ID", expected: FieldID},
		{name: "Name label", input: "상품명", expected: FieldName},
		{name: "Parenthesised suffix stripped", input: "대분류(categoryL1)", expected: FieldCategoryL1},
		{name: "Whitespace inside label", input: "상품 코드", expected: FieldProductCode},
		{name: "English alias", input: "ImageURL", expected: FieldImageURL},
		{name: "Legacy pdno alias", input: "PdNo", expected: FieldProductCode},
		{name: "Update timestamp label", input: "업데이트시각", expected: FieldUpdatedAt},
		{name: "Unknown label passes through trimmed", input: "  비고  ", expected: "비고"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeHeader(tt.input))
		})
	}
}

func TestParseRecords_FullRow(t *testing.T) {
	input := "상품ID,상품명,가격,태그,링크,이미지URL,대분류,중분류\n" +
		`1038756,전통문양 봉투 2매입,1000,"전통 | 봉투 | 핑크",https://x,https://y,문구/팬시,포장용품`

	records, skipped := ParseRecords(input)

	require.Len(t, records, 1)
	assert.Zero(t, skipped)

	rec := records[0]
	assert.Equal(t, "1038756", rec.ID)
	assert.Equal(t, "전통문양 봉투 2매입", rec.Name)
	require.NotNil(t, rec.Price)
	assert.Equal(t, int64(1000), *rec.Price)
	assert.Equal(t, []string{"전통", "봉투", "핑크"}, rec.Tags)
	assert.Equal(t, "https://x", rec.Link)
	assert.Equal(t, "https://y", rec.ImageURL)
	assert.Equal(t, "문구/팬시", rec.CategoryL1)
	assert.Equal(t, "포장용품", rec.CategoryL2)

	// Absent columns stay unset so a merge upsert cannot blank them.
	assert.Nil(t, rec.Rating)
	assert.Nil(t, rec.Stock)
	assert.Nil(t, rec.Restockable)
	assert.Empty(t, rec.Status)
}

func TestParseRecords_IDResolution(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedIDs     []string
		expectedSkipped int
	}{
		{
			name:        "Product code fallback when id column is blank",
			input:       "상품ID,상품코드,상품명\n,PC-77,연필",
			expectedIDs: []string{"PC-77"},
		},
		{
			name:            "Row without any id is skipped and counted",
			input:           "상품ID,상품명\n,이름만 있는 행\n123,정상 행",
			expectedIDs:     []string{"123"},
			expectedSkipped: 1,
		},
		{
			name:            "Header-only input yields nothing",
			input:           "상품ID,상품명",
			expectedIDs:     nil,
			expectedSkipped: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, skipped := ParseRecords(tt.input)

			assert.Equal(t, tt.expectedSkipped, skipped)
			var ids []string
			for _, r := range records {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestParseRecords_PresentButUnparseable(t *testing.T) {
	// A price cell with content but no digits stays unset rather than
	// becoming zero.
	records, _ := ParseRecords("상품ID,가격\n1,문의")

	require.Len(t, records, 1)
	assert.Nil(t, records[0].Price)
}

func TestParseRecords_UnknownHeadersGoToExtra(t *testing.T) {
	records, _ := ParseRecords("상품ID,비고\n1,수입품")

	require.Len(t, records, 1)
	assert.Equal(t, map[string]string{"비고": "수입품"}, records[0].Extra)
}

func TestParseRecords_UpdatedAtColumnDiscarded(t *testing.T) {
	records, _ := ParseRecords("상품ID,상품명,업데이트시각\n1,봉투,2026-08-01 12:00")

	require.Len(t, records, 1)
	assert.Equal(t, "봉투", records[0].Name)
	assert.Nil(t, records[0].Extra)
}

func TestParseRecords_Deterministic(t *testing.T) {
	input := "상품ID,상품명,태그\n1,a,\"x|y\"\n2,b,x x\n,skip,me\n"

	r1, s1 := ParseRecords(input)
	r2, s2 := ParseRecords(input)

	assert.Equal(t, r1, r2)
	assert.Equal(t, s1, s2)
}
