package model

// BulkResult reports the outcome of a chunked bulk write. Chunks commit
// independently and sequentially; on a mid-sequence failure Applied counts
// the documents already written, which are NOT rolled back.
type BulkResult struct {
	Requested int    `json:"requested"`
	Applied   int    `json:"applied"`
	Chunks    int    `json:"chunks"`
	Partial   bool   `json:"partial"`
	FailedAt  int    `json:"failedChunk,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// ImportReport summarises a CSV upsert run.
type ImportReport struct {
	Rows    int        `json:"rows"`
	Skipped int        `json:"skipped"`
	Write   BulkResult `json:"write"`
}
