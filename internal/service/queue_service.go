package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/vogiaan1904/docqueue/config"
	"github.com/vogiaan1904/docqueue/internal/delivery/kafka"
	"github.com/vogiaan1904/docqueue/internal/delivery/kafka/producer"
	"github.com/vogiaan1904/docqueue/internal/models"
	"github.com/vogiaan1904/docqueue/internal/monitoring"
	repo "github.com/vogiaan1904/docqueue/internal/repository/redis"
	"github.com/vogiaan1904/docqueue/internal/token"
	"github.com/vogiaan1904/docqueue/pkg/logger"
)

const (
	opRegister = "register"
	opAllow    = "allow"
	opVerify   = "verify"
)

type QueueService interface {
	// RegisterUser puts userID at the back of the wait set and returns its 1-based rank.
	RegisterUser(ctx context.Context, queue, userID string) (int64, error)
	// AllowUsers admits up to count waiting users in rank order and returns how many moved.
	AllowUsers(ctx context.Context, queue string, count int64) (int64, error)
	IsAllowed(ctx context.Context, queue, userID string) (bool, error)

	GenerateToken(ctx context.Context, queue, userID string) (string, error)
	ValidateToken(queue, userID, tok string) bool
	// VerifyAccess returns ErrInvalidToken on a token mismatch, otherwise the admission state.
	VerifyAccess(ctx context.Context, queue, userID, tok string) (bool, error)
	GetIssuedToken(ctx context.Context, queue, userID string) (string, bool, error)

	GetQueueStatus(ctx context.Context, queue, userID string) (models.QueueStatus, error)
	RegisterOrGetStatus(ctx context.Context, queue, userID string) (models.QueueStatus, error)
	StreamQueueStatus(ctx context.Context, queue, userID string, updates chan<- models.QueueStatus) error

	ProcessAllQueues(ctx context.Context, maxCount int64) iter.Seq2[models.QueueAdmission, error]
}

type queueService struct {
	queueRepo repo.QueueRepository
	tokenRepo repo.TokenRepository
	prod      producer.Producer
	monitor   *monitoring.Monitor
	l         logger.Logger
	cfg       config.QueueConfig

	now func() time.Time
}

// NewQueueService wires the engine. prod and monitor may be nil.
func NewQueueService(
	queueRepo repo.QueueRepository,
	tokenRepo repo.TokenRepository,
	prod producer.Producer,
	monitor *monitoring.Monitor,
	l logger.Logger,
	cfg config.QueueConfig,
) QueueService {
	return &queueService{
		queueRepo: queueRepo,
		tokenRepo: tokenRepo,
		prod:      prod,
		monitor:   monitor,
		l:         l,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *queueService) RegisterUser(ctx context.Context, queue, userID string) (int64, error) {
	if err := validateIdentifiers(queue, userID); err != nil {
		return 0, err
	}

	joinedAt := s.now()
	rank, added, err := s.queueRepo.AddToWait(ctx, queue, userID, joinedAt.Unix())
	if err != nil {
		s.monitor.TrackQueueOperation(opRegister, queue, monitoring.StatusError)
		return 0, fmt.Errorf("failed to add to wait set: %w", err)
	}

	if !added {
		s.monitor.TrackQueueOperation(opRegister, queue, monitoring.StatusDenied)
		return 0, ErrAlreadyRegistered
	}

	s.monitor.TrackQueueOperation(opRegister, queue, monitoring.StatusSuccess)

	if s.prod != nil {
		if err := s.prod.PublishQueueJoined(ctx, kafka.QueueJoinedEvent{
			Queue:    queue,
			UserID:   userID,
			Rank:     rank,
			JoinedAt: joinedAt,
		}); err != nil {
			// Log error but don't fail the request
			s.l.Warnf(ctx, "service.queueService.RegisterUser: publish joined: %v", err)
		}
	}

	s.l.Infof(ctx, "User %s registered in queue %s at rank %d", userID, queue, rank)

	return rank, nil
}

func (s *queueService) AllowUsers(ctx context.Context, queue string, count int64) (int64, error) {
	if queue == "" {
		return 0, ErrInvalidQueueName
	}
	if count < 0 {
		return 0, ErrInvalidCount
	}
	if count == 0 {
		return 0, nil
	}

	admittedAt := s.now()
	userIDs, err := s.queueRepo.MoveToAllowed(ctx, queue, count, admittedAt.Unix())
	if err != nil {
		s.monitor.TrackQueueOperation(opAllow, queue, monitoring.StatusError)
		return 0, fmt.Errorf("failed to move users to allowed: %w", err)
	}

	admitted := int64(len(userIDs))
	s.monitor.TrackQueueOperation(opAllow, queue, monitoring.StatusSuccess)
	s.monitor.TrackAdmitted(queue, admitted)

	if admitted == 0 {
		return 0, nil
	}

	if s.prod != nil {
		if err := s.prod.PublishQueueAdmitted(ctx, kafka.QueueAdmittedEvent{
			Queue:      queue,
			UserIDs:    userIDs,
			Count:      admitted,
			AdmittedAt: admittedAt,
		}); err != nil {
			s.l.Warnf(ctx, "service.queueService.AllowUsers: publish admitted: %v", err)
		}
	}

	s.l.Infof(ctx, "Admitted %d of %d requested users in queue %s", admitted, count, queue)

	return admitted, nil
}

func (s *queueService) IsAllowed(ctx context.Context, queue, userID string) (bool, error) {
	if err := validateIdentifiers(queue, userID); err != nil {
		return false, err
	}

	var allowed bool
	err := s.withRetry(ctx, "IsAllowed", func() error {
		var err error
		allowed, err = s.queueRepo.IsAllowed(ctx, queue, userID)
		return err
	})
	if err != nil {
		return false, err
	}

	return allowed, nil
}

func (s *queueService) GenerateToken(ctx context.Context, queue, userID string) (string, error) {
	if err := validateIdentifiers(queue, userID); err != nil {
		return "", err
	}

	tok := token.Generate(queue, userID)

	// Audit copy only. Validation recomputes the digest.
	if err := s.tokenRepo.Save(ctx, queue, userID, tok, s.cfg.TokenTTL); err != nil {
		s.l.Warnf(ctx, "service.queueService.GenerateToken: audit write: %v", err)
	}

	return tok, nil
}

func (s *queueService) ValidateToken(queue, userID, tok string) bool {
	return token.Validate(queue, userID, tok)
}

func (s *queueService) VerifyAccess(ctx context.Context, queue, userID, tok string) (bool, error) {
	if err := validateIdentifiers(queue, userID); err != nil {
		return false, err
	}

	if !token.Validate(queue, userID, tok) {
		s.monitor.TrackQueueOperation(opVerify, queue, monitoring.StatusDenied)
		return false, ErrInvalidToken
	}

	allowed, err := s.IsAllowed(ctx, queue, userID)
	if err != nil {
		s.monitor.TrackQueueOperation(opVerify, queue, monitoring.StatusError)
		return false, err
	}

	s.monitor.TrackQueueOperation(opVerify, queue, monitoring.StatusSuccess)

	return allowed, nil
}

func (s *queueService) GetIssuedToken(ctx context.Context, queue, userID string) (string, bool, error) {
	if err := validateIdentifiers(queue, userID); err != nil {
		return "", false, err
	}

	tok, found, err := s.tokenRepo.Get(ctx, queue, userID)
	if err != nil {
		return "", false, fmt.Errorf("failed to get issued token: %w", err)
	}

	return tok, found, nil
}

// GetQueueStatus reads rank and both set sizes independently. The reads are not atomic
// with respect to a concurrent AllowUsers.
func (s *queueService) GetQueueStatus(ctx context.Context, queue, userID string) (models.QueueStatus, error) {
	if err := validateIdentifiers(queue, userID); err != nil {
		return models.QueueStatus{}, err
	}

	var rank int64
	err := s.withRetry(ctx, "GetWaitRank", func() error {
		var err error
		rank, err = s.queueRepo.GetWaitRank(ctx, queue, userID)
		return err
	})
	if err != nil {
		return models.QueueStatus{}, fmt.Errorf("failed to get wait rank: %w", err)
	}

	total, err := s.totalSize(ctx, queue)
	if err != nil {
		return models.QueueStatus{}, err
	}

	return models.NewQueueStatus(rank, total), nil
}

func (s *queueService) RegisterOrGetStatus(ctx context.Context, queue, userID string) (models.QueueStatus, error) {
	rank, err := s.RegisterUser(ctx, queue, userID)
	if err != nil {
		if errors.Is(err, ErrAlreadyRegistered) {
			return s.GetQueueStatus(ctx, queue, userID)
		}
		return models.QueueStatus{}, err
	}

	// The fresh rank is used as-is; a concurrent AllowUsers may already have moved the user.
	total, err := s.totalSize(ctx, queue)
	if err != nil {
		return models.QueueStatus{}, err
	}

	return models.NewQueueStatus(rank, total), nil
}

func (s *queueService) totalSize(ctx context.Context, queue string) (int64, error) {
	var waiting, allowed int64

	err := s.withRetry(ctx, "GetWaitSize", func() error {
		var err error
		waiting, err = s.queueRepo.GetWaitSize(ctx, queue)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get wait size: %w", err)
	}

	err = s.withRetry(ctx, "GetAllowedSize", func() error {
		var err error
		allowed, err = s.queueRepo.GetAllowedSize(ctx, queue)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get allowed size: %w", err)
	}

	s.monitor.SetQueueLength(queue, monitoring.QueueTypeWaiting, waiting)
	s.monitor.SetQueueLength(queue, monitoring.QueueTypeAllowed, allowed)

	return waiting + allowed, nil
}

// StreamQueueStatus sends the current status immediately and then once per change,
// polling at the configured interval until ctx is done. Failed polls are skipped.
func (s *queueService) StreamQueueStatus(ctx context.Context, queue, userID string, updates chan<- models.QueueStatus) error {
	if err := validateIdentifiers(queue, userID); err != nil {
		return err
	}

	interval := s.cfg.StatusStreamInterval
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var (
		last    models.QueueStatus
		hasLast bool
	)

	for {
		status, err := s.GetQueueStatus(ctx, queue, userID)
		switch {
		case err != nil && ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			s.l.Warnf(ctx, "service.queueService.StreamQueueStatus: %v", err)
		case !hasLast || status != last:
			select {
			case updates <- status:
				last, hasLast = status, true
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		select {
		case <-ctx.Done():
			s.l.Debugf(ctx, "Status stream closed for user %s in queue %s", userID, queue)
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// ProcessAllQueues admits up to maxCount users in every queue found by one scan. The scan
// runs when iteration starts; queues created afterwards wait for the next call. A failing
// queue yields its error and iteration moves on to the next queue.
func (s *queueService) ProcessAllQueues(ctx context.Context, maxCount int64) iter.Seq2[models.QueueAdmission, error] {
	return func(yield func(models.QueueAdmission, error) bool) {
		if !s.cfg.SchedulerEnabled {
			return
		}

		queues, err := s.queueRepo.ScanQueues(ctx)
		if err != nil {
			yield(models.QueueAdmission{}, fmt.Errorf("failed to scan queues: %w", err))
			return
		}

		for _, q := range queues {
			if ctx.Err() != nil {
				yield(models.QueueAdmission{Queue: q}, ctx.Err())
				return
			}

			admitted, err := s.AllowUsers(ctx, q, maxCount)
			if !yield(models.QueueAdmission{Queue: q, Admitted: admitted}, err) {
				return
			}
		}
	}
}

// withRetry retries transient read failures with exponential backoff.
// Admission writes never go through here.
func (s *queueService) withRetry(ctx context.Context, op string, fn func() error) error {
	attempts := max(s.cfg.ReadRetryAttempts, 1)
	delay := s.cfg.ReadRetryBaseDelay

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			s.monitor.TrackReadRetry()

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}

			delay *= 2
			if s.cfg.ReadRetryMaxDelay > 0 {
				delay = min(delay, s.cfg.ReadRetryMaxDelay)
			}
		}

		if err := fn(); err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return err
			}

			s.l.Warnf(ctx, "service.queueService.%s: attempt %d/%d failed: %v", op, attempt+1, attempts, err)
			continue
		}

		return nil
	}

	return fmt.Errorf("%s failed after %d attempts: %w", op, attempts, lastErr)
}
