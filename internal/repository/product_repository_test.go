package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Holly45vd/products/internal/ingest"
)

func TestRecordPayload_MergeSemantics(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	price := int64(1000)
	stock := 0

	tests := []struct {
		name     string
		record   ingest.Record
		opts     UpsertOptions
		expected bson.M
	}{
		{
			name:     "Absent fields never appear in the payload",
			record:   ingest.Record{ID: "1", Name: "전통문양 봉투"},
			expected: bson.M{"name": "전통문양 봉투", "updatedAt": now},
		},
		{
			name:   "Defined numerics appear even when zero",
			record: ingest.Record{ID: "1", Price: &price, Stock: &stock},
			expected: bson.M{
				"price":     int64(1000),
				"stock":     0,
				"updatedAt": now,
			},
		},
		{
			name:     "Tags ignored without the replace option",
			record:   ingest.Record{ID: "1", Tags: []string{"전통"}},
			expected: bson.M{"updatedAt": now},
		},
		{
			name:     "Tags written with the replace option",
			record:   ingest.Record{ID: "1", Tags: []string{"전통"}},
			opts:     UpsertOptions{ReplaceTags: true},
			expected: bson.M{"tags": []string{"전통"}, "updatedAt": now},
		},
		{
			name:     "Categories written only with the replace option",
			record:   ingest.Record{ID: "1", CategoryL1: "문구/팬시", CategoryL2: "포장용품"},
			expected: bson.M{"updatedAt": now},
		},
		{
			name:   "Categories with the replace option",
			record: ingest.Record{ID: "1", CategoryL1: "문구/팬시", CategoryL2: "포장용품"},
			opts:   UpsertOptions{ReplaceCategories: true},
			expected: bson.M{
				"categoryL1": "문구/팬시",
				"categoryL2": "포장용품",
				"updatedAt":  now,
			},
		},
		{
			name:     "Empty category cells never blank stored values",
			record:   ingest.Record{ID: "1"},
			opts:     UpsertOptions{ReplaceCategories: true},
			expected: bson.M{"updatedAt": now},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, recordPayload(tt.record, tt.opts, now))
		})
	}
}

func TestUpdateModels(t *testing.T) {
	r := &productRepository{}

	models := r.updateModels([]string{"1", "2", "3"}, bson.M{"$set": bson.M{"categoryL1": "식품"}})

	require.Len(t, models, 3)
}
