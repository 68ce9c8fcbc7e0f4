// internal/workers/assessment/generate-detailed-report/config.go
package generatedetailedreport

import "time"

type Config struct {
	QuestionCachePrefix string
	QuestionCacheTTL    time.Duration
	Timeout             time.Duration
}

func LoadConfig() *Config {
	return &Config{
		QuestionCachePrefix: "exam:questions:",
		QuestionCacheTTL:    time.Hour,
		Timeout:             30 * time.Second,
	}
}
