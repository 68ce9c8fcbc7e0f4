// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"assessment-workers/internal/common/camunda"
	"assessment-workers/internal/common/config"
	"assessment-workers/internal/common/database"
	"assessment-workers/internal/common/lms"
	"assessment-workers/internal/common/logger"
	"assessment-workers/internal/common/observability"
	"assessment-workers/pkg/registry"

	// Assessment Workers (4)
	gdr "assessment-workers/internal/workers/assessment/generate-detailed-report"
	srn "assessment-workers/internal/workers/assessment/send-report-notification"
	sar "assessment-workers/internal/workers/assessment/store-assessment-result"
	vsb "assessment-workers/internal/workers/assessment/validate-submission-batch"

	// Data Access Workers (1)
	qq "assessment-workers/internal/workers/data-access/query-questions"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	var cfg *config.Config
	var err error
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClient(cfg.Camunda.BrokerAddress)
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := camundaClient.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init External Service Clients ---
	lmsClient := lms.NewClient(
		cfg.LMS.BaseURL,
		cfg.LMS.APIKey,
		config.GetDuration(cfg.LMS.Timeout),
	)

	zapLog.Info("All external service clients initialized")

	// --- Activity Registry ---
	if reg, regErr := registry.LoadRegistry("configs/activity-registry.json"); regErr != nil {
		zapLog.Warn("activity registry not loaded", zap.Error(regErr))
	} else if regErr := reg.Validate(); regErr != nil {
		zapLog.Fatal("activity registry invalid", zap.Error(regErr))
	} else {
		zapLog.Info("activity registry loaded", zap.Int("activities", len(reg.Activities)))
		for name := range cfg.Workers {
			if _, ok := reg.Find(name); !ok {
				zapLog.Warn("configured worker has no registry entry", zap.String("taskType", name))
			}
		}
	}

	// --- Register Workers ---
	var workers []*camunda.CamundaWorker

	// --- 1. Assessment Workers (4) ---
	if config.IsWorkerEnabled(cfg, vsb.TaskType) {
		wcfg := config.GetWorkerConfig(cfg, vsb.TaskType)
		handler := vsb.NewHandler(
			&vsb.Config{
				MaxBatchSize: cfg.Assessment.MaxBatchSize,
				Timeout:      config.GetDuration(wcfg.Timeout),
			},
			log,
		)
		workers = append(workers, startWorker(zeebeClient, vsb.TaskType, wcfg, handler.Handle, obs, zapLog))
	}

	if config.IsWorkerEnabled(cfg, gdr.TaskType) {
		wcfg := config.GetWorkerConfig(cfg, gdr.TaskType)
		handler := gdr.NewHandler(
			&gdr.Config{
				QuestionCachePrefix: cfg.Assessment.QuestionCachePrefix,
				QuestionCacheTTL:    time.Duration(cfg.Assessment.QuestionCacheTTL) * time.Second,
				Timeout:             config.GetDuration(wcfg.Timeout),
			},
			pg.DB, redis.Client, lmsClient, log,
		)
		workers = append(workers, startWorker(zeebeClient, gdr.TaskType, wcfg, handler.Handle, obs, zapLog))
	}

	if config.IsWorkerEnabled(cfg, sar.TaskType) {
		wcfg := config.GetWorkerConfig(cfg, sar.TaskType)
		handler := sar.NewHandler(
			&sar.Config{
				ResultsIndex: cfg.Assessment.ResultsIndex,
				Timeout:      config.GetDuration(wcfg.Timeout),
			},
			pg.DB, esClient.Client, lmsClient, log,
		)
		workers = append(workers, startWorker(zeebeClient, sar.TaskType, wcfg, handler.Handle, obs, zapLog))
	}

	if config.IsWorkerEnabled(cfg, srn.TaskType) {
		wcfg := config.GetWorkerConfig(cfg, srn.TaskType)
		handler, err := srn.NewHandler(
			&srn.Config{
				EmailEnabled: cfg.Notifications.Email.Enabled,
				SMSEnabled:   cfg.Notifications.SMS.Enabled,
				FromEmail:    cfg.Notifications.Email.FromEmail,
				AWSRegion:    cfg.Notifications.AWS.Region,
				Timeout:      config.GetDuration(wcfg.Timeout),
			},
			pg.DB, log,
		)
		if err != nil {
			zapLog.Fatal("failed to create send-report-notification handler", zap.Error(err))
		}
		workers = append(workers, startWorker(zeebeClient, srn.TaskType, wcfg, handler.Handle, obs, zapLog))
	}

	// --- 2. Data Access Workers (1) ---
	if config.IsWorkerEnabled(cfg, qq.TaskType) {
		wcfg := config.GetWorkerConfig(cfg, qq.TaskType)
		handler := qq.NewHandler(
			&qq.Config{
				Timeout: config.GetDuration(wcfg.Timeout),
			},
			pg.DB, log,
		)
		workers = append(workers, startWorker(zeebeClient, qq.TaskType, wcfg, handler.Handle, obs, zapLog))
	}

	zapLog.Info("All workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := camundaClient.HealthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	for _, w := range workers {
		if w != nil {
			w.Stop()
		}
	}

	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc camunda.JobHandlerFunc, obs *observability.Observability, log *zap.Logger) *camunda.CamundaWorker {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return nil
	}

	instrumented := camunda.JobHandlerFunc(func(jobClient worker.JobClient, job entities.Job) {
		start := time.Now()
		handlerFunc(jobClient, job)
		obs.RecordJobProcessed(context.Background(), taskType)
		obs.RecordJobDuration(context.Background(), time.Since(start), taskType)
	})

	return camunda.NewWorker(
		client,
		taskType,
		wcfg.MaxJobsActive,
		config.GetDuration(wcfg.Timeout),
		instrumented,
		log,
	)
}
