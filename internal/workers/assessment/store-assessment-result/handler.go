// internal/workers/assessment/store-assessment-result/handler.go
package storeassessmentresult

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"assessment-workers/internal/common/logger"
	"assessment-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	TaskType = "store-assessment-result"
)

var (
	ErrResultStoreFailed = errors.New("RESULT_STORE_FAILED")
	ErrDuplicateResult   = errors.New("DUPLICATE_RESULT")
)

// ReportPusher uploads the scored report to the hosted LMS backend.
type ReportPusher interface {
	PushReport(ctx context.Context, examID, studentID string, report interface{}) (string, error)
}

type Handler struct {
	config    *Config
	db        *sql.DB
	es        *elasticsearch.Client
	lmsClient ReportPusher
	logger    logger.Logger
}

func NewHandler(config *Config, db *sql.DB, es *elasticsearch.Client, lmsClient ReportPusher, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		db:        db,
		es:        es,
		lmsClient: lmsClient,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		errorCode := "RESULT_STORE_FAILED"
		if errors.Is(err, ErrDuplicateResult) {
			errorCode = "DUPLICATE_RESULT"
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.ExamID == "" || input.StudentID == "" {
		return nil, fmt.Errorf("%w: examId and studentId are required", ErrResultStoreFailed)
	}
	if len(input.Report) == 0 {
		return nil, fmt.Errorf("%w: detailedReport is required", ErrResultStoreFailed)
	}

	var exists bool
	err := h.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM assessment_results
			WHERE exam_id = $1 AND student_id = $2
		)`, input.ExamID, input.StudentID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("%w: duplicate check failed: %v", ErrResultStoreFailed, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: result already stored for exam %s and student %s",
			ErrDuplicateResult, input.ExamID, input.StudentID)
	}

	resultID := uuid.New().String()
	storedAt := time.Now().UTC().Format(time.RFC3339)

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO assessment_results (
			id, exam_id, student_id, report, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		resultID,
		input.ExamID,
		input.StudentID,
		[]byte(input.Report),
		"stored",
		storedAt,
	)
	if err != nil {
		// The existence pre-check can race with a concurrent insert for the
		// same exam and student; UNIQUE(exam_id, student_id) surfaces that
		// as a unique violation.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: result already stored for exam %s and student %s",
				ErrDuplicateResult, input.ExamID, input.StudentID)
		}
		return nil, fmt.Errorf("%w: insert failed: %v", ErrResultStoreFailed, err)
	}

	// Postgres is the source of truth. Search indexing and the LMS
	// upload are best effort and reported in the output flags.
	indexed := h.indexResult(ctx, resultID, input, storedAt)

	lmsReportID := ""
	if h.lmsClient != nil {
		var report interface{}
		if err := json.Unmarshal(input.Report, &report); err == nil {
			id, err := h.lmsClient.PushReport(ctx, input.ExamID, input.StudentID, report)
			if err != nil {
				h.logger.Warn("LMS report push failed", map[string]interface{}{
					"resultId": resultID,
					"error":    err,
				})
			} else {
				lmsReportID = id
			}
		}
	}

	h.logger.Info("assessment result stored", map[string]interface{}{
		"resultId":  resultID,
		"examId":    input.ExamID,
		"studentId": input.StudentID,
		"indexed":   indexed,
	})

	return &Output{
		ResultID:    resultID,
		Stored:      true,
		Indexed:     indexed,
		LMSReportID: lmsReportID,
		StoredAt:    storedAt,
	}, nil
}

func (h *Handler) indexResult(ctx context.Context, resultID string, input *Input, storedAt string) bool {
	if h.es == nil {
		return false
	}

	doc := map[string]interface{}{
		"resultId":  resultID,
		"examId":    input.ExamID,
		"studentId": input.StudentID,
		"report":    json.RawMessage(input.Report),
		"storedAt":  storedAt,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		h.logger.Warn("failed to marshal index document", map[string]interface{}{
			"resultId": resultID,
			"error":    err,
		})
		return false
	}

	res, err := h.es.Index(
		h.config.ResultsIndex,
		bytes.NewReader(body),
		h.es.Index.WithDocumentID(resultID),
		h.es.Index.WithContext(ctx),
	)
	if err != nil {
		h.logger.Warn("index write failed", map[string]interface{}{
			"resultId": resultID,
			"index":    h.config.ResultsIndex,
			"error":    err,
		})
		return false
	}
	defer res.Body.Close()

	if res.IsError() {
		h.logger.Warn("index write rejected", map[string]interface{}{
			"resultId": resultID,
			"index":    h.config.ResultsIndex,
			"status":   res.Status(),
		})
		return false
	}

	return true
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
