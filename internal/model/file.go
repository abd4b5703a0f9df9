package model

// UploadedFile describes one previously uploaded spreadsheet. Deleting a
// file cascades to its records server-side.
type UploadedFile struct {
	ID          int64  `json:"id"`
	Filename    string `json:"filename"`
	RecordCount int    `json:"record_count"`
	UploadDate  string `json:"upload_date"`
}

// UploadResult reports the outcome of a spreadsheet upload.
type UploadResult struct {
	RowsInserted      int `json:"rows_inserted"`
	DuplicatesSkipped int `json:"duplicates_skipped"`
}
