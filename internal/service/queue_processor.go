package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vogiaan1904/docqueue/config"
	"github.com/vogiaan1904/docqueue/internal/monitoring"
	"github.com/vogiaan1904/docqueue/pkg/logger"
)

type QueueProcessor interface {
	Start(ctx context.Context) error
	Stop() error
	// ProcessOnce runs a single pass over all queues and returns the number of users admitted.
	ProcessOnce(ctx context.Context) int64
	GetStatus() ProcessorStatus
}

type ProcessorStatus struct {
	IsRunning     bool      `json:"is_running"`
	StartedAt     time.Time `json:"started_at,omitempty"`
	LastProcessed time.Time `json:"last_processed,omitempty"`
	QueuesActive  int       `json:"queues_active"`
	TotalAdmitted int64     `json:"total_admitted"`
	ErrorCount    int64     `json:"error_count"`
}

type ProcessorConfig struct {
	InitialDelay          time.Duration // Wait before the first pass
	ProcessInterval       time.Duration // How often to process queues
	BatchSize             int64         // Max users to admit per queue per pass
	ShutdownTimeout       time.Duration // Max time to wait for graceful shutdown
	MaxProcessingDuration time.Duration // Warn when one pass takes longer
}

type queueProcessor struct {
	queueSvc QueueService
	monitor  *monitoring.Monitor
	logger   logger.Logger

	config ProcessorConfig

	// State management
	mu        sync.RWMutex
	isRunning bool
	startedAt time.Time
	stopCh    chan struct{}
	wg        sync.WaitGroup

	// Metrics
	lastProcessed time.Time
	queuesActive  int
	totalAdmitted int64
	errorCount    int64
}

func NewQueueProcessor(
	queueSvc QueueService,
	monitor *monitoring.Monitor,
	logger logger.Logger,
	cfg config.QueueConfig,
) QueueProcessor {
	return &queueProcessor{
		queueSvc: queueSvc,
		monitor:  monitor,
		logger:   logger,
		config: ProcessorConfig{
			InitialDelay:          cfg.InitialDelay,
			ProcessInterval:       cfg.ProcessInterval,
			BatchSize:             int64(cfg.AdmitBatchSize),
			ShutdownTimeout:       30 * time.Second,
			MaxProcessingDuration: cfg.MaxProcessingDuration,
		},
		stopCh: make(chan struct{}),
	}
}

func (qp *queueProcessor) Start(ctx context.Context) error {
	qp.mu.Lock()
	defer qp.mu.Unlock()

	if qp.isRunning {
		return errors.New("queue processor is already running")
	}

	qp.logger.Infof(ctx, "Starting queue processor: initial_delay=%s interval=%s batch_size=%d",
		qp.config.InitialDelay,
		qp.config.ProcessInterval,
		qp.config.BatchSize,
	)

	qp.isRunning = true
	qp.startedAt = time.Now()

	qp.wg.Add(1)
	go qp.processLoop(ctx)

	return nil
}

func (qp *queueProcessor) Stop() error {
	qp.mu.Lock()
	if !qp.isRunning {
		qp.mu.Unlock()
		return errors.New("queue processor is not running")
	}
	qp.isRunning = false
	close(qp.stopCh)
	qp.mu.Unlock()

	qp.logger.Info(context.Background(), "Stopping queue processor...")

	// Wait for graceful shutdown with timeout
	done := make(chan struct{})
	go func() {
		qp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		qp.logger.Info(context.Background(), "Queue processor stopped gracefully")
	case <-time.After(qp.config.ShutdownTimeout):
		qp.logger.Warn(context.Background(), "Queue processor shutdown timeout exceeded")
	}

	return nil
}

func (qp *queueProcessor) processLoop(ctx context.Context) {
	defer qp.wg.Done()

	if qp.config.InitialDelay > 0 {
		delay := time.NewTimer(qp.config.InitialDelay)
		defer delay.Stop()

		select {
		case <-ctx.Done():
			return
		case <-qp.stopCh:
			return
		case <-delay.C:
		}
	}

	ticker := time.NewTicker(qp.config.ProcessInterval)
	defer ticker.Stop()

	qp.logger.Info(ctx, "Queue processor loop started")

	for {
		qp.ProcessOnce(ctx)

		select {
		case <-ctx.Done():
			qp.logger.Info(ctx, "Queue processor stopped due to context cancellation")
			return
		case <-qp.stopCh:
			qp.logger.Info(ctx, "Queue processor stopped due to stop signal")
			return
		case <-ticker.C:
		}
	}
}

func (qp *queueProcessor) ProcessOnce(ctx context.Context) int64 {
	startTime := time.Now()

	var (
		admitted int64
		queues   int
		failures int64
	)

	for res, err := range qp.queueSvc.ProcessAllQueues(ctx, qp.config.BatchSize) {
		if err != nil {
			failures++
			// Continue processing other queues even if one fails
			qp.logger.Errorf(ctx, "service.queueProcessor.ProcessOnce: queue=%q: %v", res.Queue, err)
			continue
		}

		queues++
		admitted += res.Admitted
	}

	duration := time.Since(startTime)
	qp.monitor.ObserveProcessing(duration)

	if qp.config.MaxProcessingDuration > 0 && duration > qp.config.MaxProcessingDuration {
		qp.logger.Warnf(ctx, "Queue processing took longer than expected: duration=%s max_duration=%s",
			duration,
			qp.config.MaxProcessingDuration,
		)
	}

	if admitted > 0 {
		qp.logger.Infof(ctx, "Batch processing completed: queues=%d admitted=%d", queues, admitted)
	}

	qp.mu.Lock()
	qp.lastProcessed = time.Now()
	qp.queuesActive = queues
	qp.totalAdmitted += admitted
	qp.errorCount += failures
	qp.mu.Unlock()

	return admitted
}

func (qp *queueProcessor) GetStatus() ProcessorStatus {
	qp.mu.RLock()
	defer qp.mu.RUnlock()

	return ProcessorStatus{
		IsRunning:     qp.isRunning,
		StartedAt:     qp.startedAt,
		LastProcessed: qp.lastProcessed,
		QueuesActive:  qp.queuesActive,
		TotalAdmitted: qp.totalAdmitted,
		ErrorCount:    qp.errorCount,
	}
}
