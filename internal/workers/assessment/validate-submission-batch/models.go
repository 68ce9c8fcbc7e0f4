// internal/workers/assessment/validate-submission-batch/models.go
package validatesubmissionbatch

import "assessment-workers/internal/common/validation"

type Input struct {
	ExamID      string                   `json:"examId"`
	StudentID   string                   `json:"studentId"`
	Submissions []map[string]interface{} `json:"submissions"`
}

type Output struct {
	IsValid          bool                         `json:"isValid"`
	SubmissionCount  int                          `json:"submissionCount"`
	ValidationErrors []validation.ValidationError `json:"validationErrors"`
}
