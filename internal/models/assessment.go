// internal/models/assessment.go
package models

// AssessmentRecord is the stored result row returned by result lookups.
type AssessmentRecord struct {
	ResultID  string                 `json:"resultId"`
	ExamID    string                 `json:"examId"`
	StudentID string                 `json:"studentId"`
	Report    map[string]interface{} `json:"report"`
	Status    string                 `json:"status"` // "stored", "indexed", "notified"
	CreatedAt string                 `json:"createdAt"`
}

// StudentResultSummary is the compact listing row for a student's history.
type StudentResultSummary struct {
	ResultID  string `json:"resultId"`
	ExamID    string `json:"examId"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ExamResultSummary aggregates completion stats for one exam.
type ExamResultSummary struct {
	ExamID         string `json:"examId"`
	TotalResults   int    `json:"totalResults"`
	StoredResults  int    `json:"storedResults"`
	IndexedResults int    `json:"indexedResults"`
}
