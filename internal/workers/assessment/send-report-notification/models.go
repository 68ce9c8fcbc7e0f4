// internal/workers/assessment/send-report-notification/models.go
package sendreportnotification

type Input struct {
	StudentID        string                 `json:"studentId"`
	NotificationType string                 `json:"notificationType"`
	ExamID           string                 `json:"examId,omitempty"`
	ResultID         string                 `json:"resultId,omitempty"`
	Priority         string                 `json:"priority,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
}

type Output struct {
	NotificationID string `json:"notificationId"`
	Status         string `json:"status"` // "sent", "failed", "disabled"
	SentAt         string `json:"sentAt"` // ISO 8601
}

// Notification types
const (
	TypeReportReady  = "report_ready"
	TypeReportFailed = "report_failed"
)

// Statuses
const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)
