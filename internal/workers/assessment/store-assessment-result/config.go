// internal/workers/assessment/store-assessment-result/config.go
package storeassessmentresult

import "time"

type Config struct {
	ResultsIndex string
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		ResultsIndex: "assessment-results",
		Timeout:      30 * time.Second,
	}
}
