// internal/workers/assessment/validate-submission-batch/handler.go
package validatesubmissionbatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"assessment-workers/internal/common/logger"
	"assessment-workers/internal/common/metrics"
	"assessment-workers/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "validate-submission-batch"
)

var (
	ErrSubmissionBatchTooLarge = errors.New("SUBMISSION_BATCH_TOO_LARGE")
)

func minLen(n int) *int { return &n }

// submissionContract is the shape each submission entry must satisfy
// before the batch is handed to the scoring pipeline.
var submissionContract = validation.JSONSchema{
	Type: "object",
	Properties: map[string]validation.Property{
		"questionId":       {Type: "string", MinLength: minLen(1)},
		"selectedOptionId": {Type: "string", MinLength: minLen(1)},
	},
	Required:             []string{"questionId", "selectedOptionId"},
	AdditionalProperties: false,
}

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, "SUBMISSION_BATCH_TOO_LARGE", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

// execute reports validation failures through the output, not the error:
// the workflow gateway routes on isValid and the details travel with it.
// Only an oversized batch is a hard error.
func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	var validationErrors []validation.ValidationError

	if strings.TrimSpace(input.ExamID) == "" {
		validationErrors = append(validationErrors, validation.ValidationError{
			Field:   "examId",
			Code:    "MISSING_REQUIRED",
			Message: "examId is required",
		})
	}
	if strings.TrimSpace(input.StudentID) == "" {
		validationErrors = append(validationErrors, validation.ValidationError{
			Field:   "studentId",
			Code:    "MISSING_REQUIRED",
			Message: "studentId is required",
		})
	}

	if len(input.Submissions) == 0 {
		validationErrors = append(validationErrors, validation.ValidationError{
			Field:   "submissions",
			Code:    "MISSING_REQUIRED",
			Message: "at least one submission is required",
		})
	}
	if h.config.MaxBatchSize > 0 && len(input.Submissions) > h.config.MaxBatchSize {
		return nil, fmt.Errorf("%w: %d submissions, limit %d",
			ErrSubmissionBatchTooLarge, len(input.Submissions), h.config.MaxBatchSize)
	}

	seen := make(map[string]bool, len(input.Submissions))
	for i, sub := range input.Submissions {
		result := validation.ValidateInput(sub, submissionContract)
		for _, subErr := range result.Errors {
			validationErrors = append(validationErrors, validation.ValidationError{
				Field:   fmt.Sprintf("submissions[%d].%s", i, subErr.Field),
				Code:    subErr.Code,
				Message: subErr.Message,
			})
		}
		if !result.Valid {
			continue
		}

		questionID, _ := sub["questionId"].(string)
		if seen[questionID] {
			validationErrors = append(validationErrors, validation.ValidationError{
				Field:   fmt.Sprintf("submissions[%d].questionId", i),
				Code:    "DUPLICATE_QUESTION",
				Message: fmt.Sprintf("question %s answered more than once", questionID),
			})
		}
		seen[questionID] = true
	}

	isValid := len(validationErrors) == 0
	if !isValid {
		failed := &validation.ValidationResult{Valid: false, Errors: validationErrors}
		h.logger.Warn("submission batch rejected", map[string]interface{}{
			"examId":    input.ExamID,
			"studentId": input.StudentID,
			"errors":    failed.GetErrorMessages(),
		})
	} else {
		h.logger.Info("validation completed", map[string]interface{}{
			"examId":    input.ExamID,
			"studentId": input.StudentID,
			"count":     len(input.Submissions),
		})
	}

	if validationErrors == nil {
		validationErrors = []validation.ValidationError{}
	}

	return &Output{
		IsValid:          isValid,
		SubmissionCount:  len(input.Submissions),
		ValidationErrors: validationErrors,
	}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
