// internal/workers/assessment/generate-detailed-report/models.go
package generatedetailedreport

import "assessment-workers/internal/scoring"

type Input struct {
	ExamID      string                 `json:"examId"`
	StudentID   string                 `json:"studentId"`
	StudentData map[string]interface{} `json:"studentData,omitempty"`
	Submissions []scoring.Submission   `json:"submissions"`
}

type Output struct {
	Report        *scoring.DetailedAssessmentResult `json:"detailedReport"`
	QuestionCount int                               `json:"questionCount"`
	CacheHit      bool                              `json:"cacheHit"`
}
