// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Constructor Tests
// ==========================

func TestStandardErrorConstructors(t *testing.T) {
	tests := []struct {
		name          string
		err           *StandardError
		wantCode      ErrorCode
		wantRetryable bool
	}{
		{
			name:          "submission validation failed",
			err:           NewSubmissionValidationFailedError("missing responses"),
			wantCode:      ErrCodeSubmissionValidationFailed,
			wantRetryable: false,
		},
		{
			name:          "submission batch too large",
			err:           NewSubmissionBatchTooLargeError(250, 100),
			wantCode:      ErrCodeSubmissionBatchTooLarge,
			wantRetryable: false,
		},
		{
			name:          "question catalog not found",
			err:           NewQuestionCatalogNotFoundError("exam-42"),
			wantCode:      ErrCodeQuestionCatalogNotFound,
			wantRetryable: false,
		},
		{
			name:          "scoring failed",
			err:           NewScoringFailedError("unknown category"),
			wantCode:      ErrCodeScoringFailed,
			wantRetryable: false,
		},
		{
			name:          "database connection failed",
			err:           NewDatabaseConnectionFailedError(fmt.Errorf("dial tcp refused")),
			wantCode:      ErrCodeDatabaseConnectionFailed,
			wantRetryable: true,
		},
		{
			name:          "query timeout",
			err:           NewQueryTimeoutError("exam_questions"),
			wantCode:      ErrCodeQueryTimeout,
			wantRetryable: true,
		},
		{
			name:          "invalid query type",
			err:           NewInvalidQueryTypeError("drop_tables"),
			wantCode:      ErrCodeInvalidQueryType,
			wantRetryable: false,
		},
		{
			name:          "index write failed",
			err:           NewIndexWriteFailedError("assessment-results", fmt.Errorf("shard unavailable")),
			wantCode:      ErrCodeIndexWriteFailed,
			wantRetryable: true,
		},
		{
			name:          "cache read failed",
			err:           NewCacheReadFailedError("questions:exam-42", fmt.Errorf("connection reset")),
			wantCode:      ErrCodeCacheReadFailed,
			wantRetryable: true,
		},
		{
			name:          "duplicate result",
			err:           NewDuplicateResultError("res-1"),
			wantCode:      ErrCodeDuplicateResult,
			wantRetryable: false,
		},
		{
			name:          "notification send failed",
			err:           NewNotificationSendFailedError("email", fmt.Errorf("ses throttled")),
			wantCode:      ErrCodeNotificationSendFailed,
			wantRetryable: true,
		},
		{
			name:          "lms timeout",
			err:           NewLMSTimeoutError(),
			wantCode:      ErrCodeLMSTimeout,
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.err)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantRetryable, tt.err.Retryable)
			assert.NotEmpty(t, tt.err.Message)
			assert.False(t, tt.err.Timestamp.IsZero())
			assert.Contains(t, tt.err.Error(), string(tt.wantCode))
		})
	}
}

// ==========================
// Retry Policy Tests
// ==========================

func TestGetRetryCount(t *testing.T) {
	assert.Equal(t, 3, GetRetryCount(ErrCodeDatabaseConnectionFailed))
	assert.Equal(t, 3, GetRetryCount(ErrCodeQueryExecutionFailed))
	assert.Equal(t, 3, GetRetryCount(ErrCodeResultStoreFailed))
	assert.Equal(t, 2, GetRetryCount(ErrCodeQueryTimeout))
	assert.Equal(t, 2, GetRetryCount(ErrCodeLMSTimeout))
	assert.Equal(t, 0, GetRetryCount(ErrCodeSubmissionValidationFailed))
	assert.Equal(t, 0, GetRetryCount(ErrCodeDuplicateResult))
	assert.Equal(t, 0, GetRetryCount("UNKNOWN_CODE"))
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeIndexWriteFailed))
	assert.True(t, IsRetryableErrorCode(ErrCodeCacheReadFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeInvalidQueryType))
	assert.False(t, IsRetryableErrorCode(ErrCodeScoringFailed))
}

// ==========================
// BPMN Conversion Tests
// ==========================

func TestConvertToBPMNError(t *testing.T) {
	stdErr := NewQueryTimeoutError("student_results")

	bpmnErr := ConvertToBPMNError(stdErr)

	require.NotNil(t, bpmnErr)
	assert.Equal(t, "QUERY_TIMEOUT", bpmnErr.Code)
	assert.Equal(t, stdErr.Message, bpmnErr.Message)
	assert.True(t, bpmnErr.Retryable)
	assert.Equal(t, 2, bpmnErr.Retries)
	assert.Equal(t, "QUERY_TIMEOUT", bpmnErr.ErrorVariables["originalErrorCode"])

	_, err := time.Parse(time.RFC3339, bpmnErr.ErrorVariables["timestamp"].(string))
	assert.NoError(t, err)
}

func TestConvertToBPMNError_NonRetryableZeroesRetries(t *testing.T) {
	bpmnErr := ConvertToBPMNError(NewDuplicateResultError("res-9"))

	assert.Equal(t, "DUPLICATE_RESULT", bpmnErr.Code)
	assert.False(t, bpmnErr.Retryable)
	assert.Equal(t, 0, bpmnErr.Retries)
}

func TestConvertToBPMNError_UnmappedCodeFallsBack(t *testing.T) {
	bpmnErr := ConvertToBPMNError(NewBusinessRuleError("grade out of range", "grade: 14"))

	assert.Equal(t, "BUSINESS_RULE_VIOLATION", bpmnErr.Code)
	assert.Equal(t, 0, bpmnErr.Retries)
}

func TestBPMNError_ToErrorVariables(t *testing.T) {
	bpmnErr := &BPMNError{
		Code:      "RESULT_STORE_FAILED",
		Message:   "Assessment result persistence failed",
		Details:   "pq: deadlock detected",
		Retryable: true,
		ErrorVariables: map[string]interface{}{
			"resultId": "res-3",
		},
	}

	vars := bpmnErr.ToErrorVariables()

	assert.Equal(t, "RESULT_STORE_FAILED", vars["errorCode"])
	assert.Equal(t, "Assessment result persistence failed", vars["errorMessage"])
	assert.Equal(t, "pq: deadlock detected", vars["errorDetails"])
	assert.Equal(t, true, vars["retryable"])
	assert.Equal(t, "res-3", vars["resultId"])
}

// ==========================
// Categorization Tests
// ==========================

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "ASSESSMENT", GetErrorCategory(ErrCodeScoringFailed))
	assert.Equal(t, "DATABASE", GetErrorCategory(ErrCodeQueryExecutionFailed))
	assert.Equal(t, "SEARCH", GetErrorCategory(ErrCodeIndexWriteFailed))
	assert.Equal(t, "CACHE", GetErrorCategory(ErrCodeCacheReadFailed))
	assert.Equal(t, "NOTIFICATION", GetErrorCategory(ErrCodeNotificationSendFailed))
	assert.Equal(t, "LMS", GetErrorCategory(ErrCodeLMSTimeout))
	assert.Equal(t, "OTHER", GetErrorCategory("SOMETHING_ELSE"))
}
