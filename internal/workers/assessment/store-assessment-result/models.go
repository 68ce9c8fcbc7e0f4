// internal/workers/assessment/store-assessment-result/models.go
package storeassessmentresult

import "encoding/json"

type Input struct {
	ExamID    string          `json:"examId"`
	StudentID string          `json:"studentId"`
	Report    json.RawMessage `json:"detailedReport"`
}

type Output struct {
	ResultID    string `json:"resultId"`
	Stored      bool   `json:"stored"`
	Indexed     bool   `json:"indexed"`
	LMSReportID string `json:"lmsReportId,omitempty"`
	StoredAt    string `json:"storedAt"` // ISO 8601
}
