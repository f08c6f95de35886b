package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vogiaan1904/docqueue/config"
	"github.com/vogiaan1904/docqueue/internal/models"
	repo "github.com/vogiaan1904/docqueue/internal/repository/redis"
	"github.com/vogiaan1904/docqueue/internal/token"
	"github.com/vogiaan1904/docqueue/pkg/logger"
)

func testQueueConfig() config.QueueConfig {
	return config.QueueConfig{
		SchedulerEnabled:     true,
		ProcessInterval:      10 * time.Millisecond,
		AdmitBatchSize:       3,
		TokenTTL:             5 * time.Minute,
		StatusStreamInterval: 10 * time.Millisecond,
		ReadRetryAttempts:    3,
		ReadRetryBaseDelay:   time.Millisecond,
		ReadRetryMaxDelay:    5 * time.Millisecond,
	}
}

// steppingClock advances one second per call so registrations get distinct scores.
func steppingClock() func() time.Time {
	base := time.Unix(1_700_000_000, 0)
	var step atomic.Int64
	return func() time.Time {
		return base.Add(time.Duration(step.Add(1)) * time.Second)
	}
}

type testEnv struct {
	svc       *queueService
	m         *miniredis.Miniredis
	queueRepo repo.QueueRepository
	tokenRepo repo.TokenRepository
}

func setupService(t *testing.T, cfg config.QueueConfig) *testEnv {
	t.Helper()

	m := miniredis.RunT(t)
	cli := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = cli.Close() })

	l := logger.InitializeTestZapLogger()
	qr := repo.NewRedisQueueRepository(cli, l)
	tr := repo.NewRedisTokenRepository(cli, l)

	svc := NewQueueService(qr, tr, nil, nil, l, cfg).(*queueService)
	svc.now = steppingClock()

	return &testEnv{svc: svc, m: m, queueRepo: qr, tokenRepo: tr}
}

func registerAll(t *testing.T, svc QueueService, queue string, users ...string) {
	t.Helper()
	for _, u := range users {
		_, err := svc.RegisterUser(context.Background(), queue, u)
		require.NoError(t, err)
	}
}

func TestQueueService_RegisterUser_Duplicate(t *testing.T) {
	env := setupService(t, testQueueConfig())
	ctx := context.Background()

	rank, err := env.svc.RegisterUser(ctx, "default", "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rank)

	registerAll(t, env.svc, "default", "bob")

	_, err = env.svc.RegisterUser(ctx, "default", "alice")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	// Same user in another queue is independent.
	rank, err = env.svc.RegisterUser(ctx, "other", "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rank)
}

func TestQueueService_RegisterUser_RanksFollowCallOrder(t *testing.T) {
	env := setupService(t, testQueueConfig())
	ctx := context.Background()

	users := []string{"zed", "amy", "mike", "bob", "carl", "dan"}
	for i, u := range users {
		rank, err := env.svc.RegisterUser(ctx, "q", u)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), rank, "user %s", u)
	}
}

func TestQueueService_RegisterUser_InvalidIdentifiers(t *testing.T) {
	env := setupService(t, testQueueConfig())
	ctx := context.Background()

	_, err := env.svc.RegisterUser(ctx, "", "u")
	assert.ErrorIs(t, err, ErrInvalidQueueName)

	_, err = env.svc.RegisterUser(ctx, "q", "")
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestQueueService_RegisterUser_Concurrent(t *testing.T) {
	env := setupService(t, testQueueConfig())
	ctx := context.Background()

	const callers = 25
	var (
		wg       sync.WaitGroup
		success  atomic.Int32
		rejected atomic.Int32
	)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.svc.RegisterUser(ctx, "q", "same")
			switch {
			case err == nil:
				success.Add(1)
			case errors.Is(err, ErrAlreadyRegistered):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), success.Load())
	assert.Equal(t, int32(callers-1), rejected.Load())
}

func TestQueueService_AllowUsers(t *testing.T) {
	tests := []struct {
		name    string
		waiting []string
		count   int64
		want    []string
	}{
		{name: "fewer than waiting", waiting: []string{"a", "b", "c"}, count: 2, want: []string{"a", "b"}},
		{name: "exactly waiting", waiting: []string{"a", "b"}, count: 2, want: []string{"a", "b"}},
		{name: "more than waiting", waiting: []string{"a"}, count: 5, want: []string{"a"}},
		{name: "empty queue", waiting: nil, count: 3, want: nil},
		{name: "zero count", waiting: []string{"a"}, count: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupService(t, testQueueConfig())
			ctx := context.Background()
			registerAll(t, env.svc, "q", tt.waiting...)

			admitted, err := env.svc.AllowUsers(ctx, "q", tt.count)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), admitted)

			moved := make(map[string]bool, len(tt.want))
			for _, u := range tt.want {
				moved[u] = true
			}

			for _, u := range tt.waiting {
				ok, err := env.svc.IsAllowed(ctx, "q", u)
				require.NoError(t, err)
				assert.Equal(t, moved[u], ok, "user %s", u)
			}
		})
	}
}

func TestQueueService_AllowUsers_InvalidCount(t *testing.T) {
	env := setupService(t, testQueueConfig())

	_, err := env.svc.AllowUsers(context.Background(), "q", -1)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = env.svc.AllowUsers(context.Background(), "", 1)
	assert.ErrorIs(t, err, ErrInvalidQueueName)
}

func TestQueueService_AllowUsers_ZeroCountSkipsStore(t *testing.T) {
	db, mock := redismock.NewClientMock()
	l := logger.InitializeTestZapLogger()
	svc := NewQueueService(repo.NewRedisQueueRepository(db, l), repo.NewRedisTokenRepository(db, l), nil, nil, l, testQueueConfig())

	admitted, err := svc.AllowUsers(context.Background(), "q", 0)
	require.NoError(t, err)
	assert.Zero(t, admitted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueService_Tokens(t *testing.T) {
	env := setupService(t, testQueueConfig())
	ctx := context.Background()

	tok, err := env.svc.GenerateToken(ctx, "default", "alice")
	require.NoError(t, err)
	assert.Equal(t, token.Generate("default", "alice"), tok)

	again, err := env.svc.GenerateToken(ctx, "default", "alice")
	require.NoError(t, err)
	assert.Equal(t, tok, again)

	assert.True(t, env.svc.ValidateToken("default", "alice", tok))
	assert.False(t, env.svc.ValidateToken("default", "alice", "wrong"))
	assert.False(t, env.svc.ValidateToken("default", "bob", tok))

	issued, found, err := env.svc.GetIssuedToken(ctx, "default", "alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, tok, issued)

	// Expired audit copies do not affect validation.
	env.m.FastForward(10 * time.Minute)
	_, found, err = env.svc.GetIssuedToken(ctx, "default", "alice")
	require.NoError(t, err)
	assert.False(t, found)
	assert.True(t, env.svc.ValidateToken("default", "alice", tok))
}

type failingTokenRepo struct{}

func (failingTokenRepo) Save(context.Context, string, string, string, time.Duration) error {
	return errors.New("store down")
}

func (failingTokenRepo) Get(context.Context, string, string) (string, bool, error) {
	return "", false, errors.New("store down")
}

func TestQueueService_GenerateToken_AuditFailureIgnored(t *testing.T) {
	env := setupService(t, testQueueConfig())
	env.svc.tokenRepo = failingTokenRepo{}

	tok, err := env.svc.GenerateToken(context.Background(), "q", "u")
	require.NoError(t, err)
	assert.Equal(t, token.Generate("q", "u"), tok)

	_, _, err = env.svc.GetIssuedToken(context.Background(), "q", "u")
	assert.Error(t, err)
}

func TestQueueService_VerifyAccess(t *testing.T) {
	env := setupService(t, testQueueConfig())
	ctx := context.Background()
	registerAll(t, env.svc, "q", "alice", "bob")

	_, err := env.svc.VerifyAccess(ctx, "q", "alice", "forged")
	assert.ErrorIs(t, err, ErrInvalidToken)

	ok, err := env.svc.VerifyAccess(ctx, "q", "alice", token.Generate("q", "alice"))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = env.svc.AllowUsers(ctx, "q", 1)
	require.NoError(t, err)

	ok, err = env.svc.VerifyAccess(ctx, "q", "alice", token.Generate("q", "alice"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = env.svc.VerifyAccess(ctx, "q", "bob", token.Generate("q", "bob"))
	require.NoError(t, err)
	assert.False(t, ok)
}

// An unknown user reports rank 0 and progress 100. Callers must read rank 0 as
// "not waiting", never as "done".
func TestQueueService_GetQueueStatus_Unregistered(t *testing.T) {
	env := setupService(t, testQueueConfig())
	ctx := context.Background()
	registerAll(t, env.svc, "q", "a", "b")

	status, err := env.svc.GetQueueStatus(ctx, "q", "ghost")
	require.NoError(t, err)
	assert.Equal(t, models.QueueStatus{UserRank: 0, TotalQueueSize: 2, Progress: 100}, status)
}

func TestQueueService_GetQueueStatus_CountsBothSets(t *testing.T) {
	env := setupService(t, testQueueConfig())
	ctx := context.Background()
	registerAll(t, env.svc, "q", "a", "b", "c", "d")

	_, err := env.svc.AllowUsers(ctx, "q", 1)
	require.NoError(t, err)

	status, err := env.svc.GetQueueStatus(ctx, "q", "d")
	require.NoError(t, err)
	assert.Equal(t, int64(3), status.UserRank)
	assert.Equal(t, int64(4), status.TotalQueueSize)
	assert.InDelta(t, 100.0/3.0, status.Progress, 1e-9)
}

// Rank is the current position in the wait set, so it shrinks as users ahead are admitted.
func TestQueueService_EndToEnd(t *testing.T) {
	env := setupService(t, testQueueConfig())
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		rank, err := env.svc.RegisterUser(ctx, "default", strconv.Itoa(i))
		require.NoError(t, err)
		assert.Equal(t, int64(i), rank)
	}

	admitted, err := env.svc.AllowUsers(ctx, "default", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), admitted)

	ok, err := env.svc.IsAllowed(ctx, "default", "1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = env.svc.IsAllowed(ctx, "default", "3")
	require.NoError(t, err)
	assert.False(t, ok)

	status, err := env.svc.GetQueueStatus(ctx, "default", "3")
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.UserRank)
	assert.Equal(t, int64(5), status.TotalQueueSize)
	assert.Equal(t, 100.0, status.Progress)

	// Admitted users are no longer ranked.
	status, err = env.svc.GetQueueStatus(ctx, "default", "1")
	require.NoError(t, err)
	assert.Zero(t, status.UserRank)
}

func TestQueueService_RegisterOrGetStatus(t *testing.T) {
	env := setupService(t, testQueueConfig())
	ctx := context.Background()
	registerAll(t, env.svc, "q", "a")

	status, err := env.svc.RegisterOrGetStatus(ctx, "q", "b")
	require.NoError(t, err)
	assert.Equal(t, models.NewQueueStatus(2, 2), status)

	// Registering again falls through to the current status.
	status, err = env.svc.RegisterOrGetStatus(ctx, "q", "b")
	require.NoError(t, err)
	assert.Equal(t, models.NewQueueStatus(2, 2), status)

	_, err = env.svc.RegisterOrGetStatus(ctx, "q", "")
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestQueueService_ProcessAllQueues_Disabled(t *testing.T) {
	cfg := testQueueConfig()
	cfg.SchedulerEnabled = false
	env := setupService(t, cfg)
	registerAll(t, env.svc, "q", "a", "b")

	count := 0
	for range env.svc.ProcessAllQueues(context.Background(), 10) {
		count++
	}
	assert.Zero(t, count)

	size, err := env.queueRepo.GetWaitSize(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, int64(2), size)
}

func TestQueueService_ProcessAllQueues(t *testing.T) {
	env := setupService(t, testQueueConfig())
	ctx := context.Background()
	registerAll(t, env.svc, "alpha", "a1", "a2", "a3", "a4")
	registerAll(t, env.svc, "beta", "b1")

	var results []models.QueueAdmission
	for res, err := range env.svc.ProcessAllQueues(ctx, 3) {
		require.NoError(t, err)
		results = append(results, res)
	}

	assert.ElementsMatch(t, []models.QueueAdmission{
		{Queue: "alpha", Admitted: 3},
		{Queue: "beta", Admitted: 1},
	}, results)

	rank, err := env.queueRepo.GetWaitRank(ctx, "alpha", "a4")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rank)
}

func TestQueueService_ProcessAllQueues_StopsWhenConsumerBreaks(t *testing.T) {
	env := setupService(t, testQueueConfig())
	ctx := context.Background()
	registerAll(t, env.svc, "alpha", "a1")
	registerAll(t, env.svc, "beta", "b1")

	seen := 0
	for range env.svc.ProcessAllQueues(ctx, 1) {
		seen++
		break
	}
	assert.Equal(t, 1, seen)

	alpha, err := env.queueRepo.GetAllowedSize(ctx, "alpha")
	require.NoError(t, err)
	beta, err := env.queueRepo.GetAllowedSize(ctx, "beta")
	require.NoError(t, err)
	assert.Equal(t, int64(1), alpha+beta)
}

type flakyQueueRepo struct {
	repo.QueueRepository

	rankFailures atomic.Int32
	addCalls     atomic.Int32
	failAdd      bool
	failMoveFor  string
}

func (f *flakyQueueRepo) GetWaitRank(ctx context.Context, queue, userID string) (int64, error) {
	if f.rankFailures.Add(-1) >= 0 {
		return 0, errors.New("transient")
	}
	return f.QueueRepository.GetWaitRank(ctx, queue, userID)
}

func (f *flakyQueueRepo) AddToWait(ctx context.Context, queue, userID string, score int64) (int64, bool, error) {
	f.addCalls.Add(1)
	if f.failAdd {
		return 0, false, errors.New("transient")
	}
	return f.QueueRepository.AddToWait(ctx, queue, userID, score)
}

func (f *flakyQueueRepo) MoveToAllowed(ctx context.Context, queue string, count, score int64) ([]string, error) {
	if queue == f.failMoveFor {
		return nil, errors.New("move failed")
	}
	return f.QueueRepository.MoveToAllowed(ctx, queue, count, score)
}

func TestQueueService_ReadRetry(t *testing.T) {
	env := setupService(t, testQueueConfig())
	ctx := context.Background()
	registerAll(t, env.svc, "q", "a")

	flaky := &flakyQueueRepo{QueueRepository: env.queueRepo}
	flaky.rankFailures.Store(2)
	env.svc.queueRepo = flaky

	status, err := env.svc.GetQueueStatus(ctx, "q", "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.UserRank)

	flaky.rankFailures.Store(5)
	_, err = env.svc.GetQueueStatus(ctx, "q", "a")
	assert.ErrorContains(t, err, "failed after 3 attempts")
}

func TestQueueService_RegisterIsNotRetried(t *testing.T) {
	env := setupService(t, testQueueConfig())
	flaky := &flakyQueueRepo{QueueRepository: env.queueRepo, failAdd: true}
	env.svc.queueRepo = flaky

	_, err := env.svc.RegisterUser(context.Background(), "q", "a")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadyRegistered)
	assert.Equal(t, int32(1), flaky.addCalls.Load())
}

func TestQueueService_ProcessAllQueues_ContinuesAfterFailure(t *testing.T) {
	env := setupService(t, testQueueConfig())
	ctx := context.Background()
	registerAll(t, env.svc, "bad", "x")
	registerAll(t, env.svc, "good", "y")
	env.svc.queueRepo = &flakyQueueRepo{QueueRepository: env.queueRepo, failMoveFor: "bad"}

	var failed, succeeded []string
	for res, err := range env.svc.ProcessAllQueues(ctx, 5) {
		if err != nil {
			failed = append(failed, res.Queue)
			continue
		}
		succeeded = append(succeeded, res.Queue)
	}

	assert.Equal(t, []string{"bad"}, failed)
	assert.Equal(t, []string{"good"}, succeeded)
}

func TestQueueService_StreamQueueStatus(t *testing.T) {
	env := setupService(t, testQueueConfig())
	registerAll(t, env.svc, "q", "a", "b")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan models.QueueStatus, 16)
	done := make(chan error, 1)
	go func() {
		done <- env.svc.StreamQueueStatus(ctx, "q", "b", updates)
	}()

	first := <-updates
	assert.Equal(t, models.NewQueueStatus(2, 2), first)

	_, err := env.svc.AllowUsers(context.Background(), "q", 1)
	require.NoError(t, err)

	select {
	case next := <-updates:
		assert.Equal(t, models.NewQueueStatus(1, 2), next)
	case <-time.After(2 * time.Second):
		t.Fatal("no update after admission")
	}

	// Unchanged status is not re-sent.
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, updates)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop on cancel")
	}
}
