// internal/workers/assessment/validate-submission-batch/config.go
package validatesubmissionbatch

import "time"

type Config struct {
	MaxBatchSize int
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		MaxBatchSize: 500,
		Timeout:      30 * time.Second,
	}
}
