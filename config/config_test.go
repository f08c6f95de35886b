package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Queue.SchedulerEnabled)
	assert.Equal(t, 3*time.Second, cfg.Queue.ProcessInterval)
	assert.Equal(t, 5*time.Second, cfg.Queue.InitialDelay)
	assert.Equal(t, 3, cfg.Queue.AdmitBatchSize)
	assert.Equal(t, 5*time.Minute, cfg.Queue.TokenTTL)
	assert.Equal(t, time.Second, cfg.Queue.StatusStreamInterval)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("QUEUE_SCHEDULER_ENABLED", "true")
	t.Setenv("QUEUE_PROCESS_INTERVAL", "500ms")
	t.Setenv("QUEUE_ADMIT_BATCH_SIZE", "7")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("SERVER_HTTP_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Queue.SchedulerEnabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Queue.ProcessInterval)
	assert.Equal(t, 7, cfg.Queue.AdmitBatchSize)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{HTTPPort: 8080, GRpcPort: 50056},
			Redis:  RedisConfig{Addr: "localhost:6379"},
			Queue: QueueConfig{
				ProcessInterval:      time.Second,
				AdmitBatchSize:       3,
				StatusStreamInterval: time.Second,
				ReadRetryAttempts:    1,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad http port", mutate: func(c *Config) { c.Server.HTTPPort = 70000 }, wantErr: true},
		{name: "bad grpc port", mutate: func(c *Config) { c.Server.GRpcPort = 0 }, wantErr: true},
		{name: "missing redis", mutate: func(c *Config) { c.Redis.Addr = "" }, wantErr: true},
		{name: "zero interval", mutate: func(c *Config) { c.Queue.ProcessInterval = 0 }, wantErr: true},
		{name: "negative batch", mutate: func(c *Config) { c.Queue.AdmitBatchSize = -1 }, wantErr: true},
		{name: "no retry attempts", mutate: func(c *Config) { c.Queue.ReadRetryAttempts = 0 }, wantErr: true},
		{name: "kafka without brokers", mutate: func(c *Config) {
			c.Kafka.Enabled = true
			c.Kafka.Brokers = nil
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
