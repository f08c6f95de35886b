package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vogiaan1904/docqueue/config"
	grpcSvc "github.com/vogiaan1904/docqueue/internal/delivery/grpc"
	httpDelivery "github.com/vogiaan1904/docqueue/internal/delivery/http"
	"github.com/vogiaan1904/docqueue/internal/delivery/kafka/consumer"
	"github.com/vogiaan1904/docqueue/internal/delivery/kafka/producer"
	"github.com/vogiaan1904/docqueue/internal/infra/redis"
	"github.com/vogiaan1904/docqueue/internal/monitoring"
	repo "github.com/vogiaan1904/docqueue/internal/repository/redis"
	"github.com/vogiaan1904/docqueue/internal/service"
	pkgGrpc "github.com/vogiaan1904/docqueue/pkg/grpc"
	pkgKafka "github.com/vogiaan1904/docqueue/pkg/kafka"
	pkgLog "github.com/vogiaan1904/docqueue/pkg/logger"
	docqueuepb "github.com/vogiaan1904/docqueue/protogen/docqueue"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	l := pkgLog.InitializeZapLogger(pkgLog.ZapConfig{
		Level:    cfg.Log.Level,
		Mode:     cfg.Log.Mode,
		Encoding: cfg.Log.Encoding,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisCli, err := redis.Connect(ctx, cfg.Redis, l)
	if err != nil {
		l.Fatalf(ctx, "Failed to connect to Redis: %v", err)
	}
	defer redis.Disconnect(context.Background(), redisCli, l)

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	monitor := monitoring.NewMonitor(reg)

	qRepo := repo.NewRedisQueueRepository(redisCli, l)
	tRepo := repo.NewRedisTokenRepository(redisCli, l)

	// Kafka is optional; the engine runs without events when it is off.
	var (
		prod    producer.Producer
		consGrp sarama.ConsumerGroup
	)
	if cfg.Kafka.Enabled {
		kSyncProd, err := pkgKafka.NewProducer(pkgKafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			RetryMax:     cfg.Kafka.ProducerRetryMax,
			RequiredAcks: cfg.Kafka.ProducerRequiredAcks,
		}, l)
		if err != nil {
			l.Fatalf(ctx, "Failed to initialize Kafka producer: %v", err)
		}
		prod = producer.NewProducer(kSyncProd, l)
		defer func() {
			if err := prod.Close(); err != nil {
				l.Errorf(ctx, "Failed to close Kafka producer: %v", err)
			}
		}()

		consGrp, err = pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			GroupID: cfg.Kafka.ConsumerGroupID,
		}, l)
		if err != nil {
			l.Fatalf(ctx, "Failed to initialize Kafka consumer: %v", err)
		}
	}

	// Initialize services
	qSvc := service.NewQueueService(qRepo, tRepo, prod, monitor, l, cfg.Queue)
	queueProcessor := service.NewQueueProcessor(qSvc, monitor, l, cfg.Queue)

	g, gCtx := errgroup.WithContext(ctx)

	if consGrp != nil {
		cons := consumer.NewConsumer(consGrp, qSvc, l)
		if err := cons.Start(gCtx); err != nil {
			l.Fatalf(ctx, "Failed to start Kafka consumer: %v", err)
		}
		defer func() {
			if err := cons.Close(); err != nil {
				l.Errorf(ctx, "Failed to close Kafka consumer: %v", err)
			}
		}()
	}

	if cfg.Queue.SchedulerEnabled {
		if err := queueProcessor.Start(gCtx); err != nil {
			l.Fatalf(ctx, "Failed to start queue processor: %v", err)
		}
	} else {
		l.Info(ctx, "Queue scheduler disabled")
	}

	// gRPC server
	lnr, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRpcPort))
	if err != nil {
		l.Fatalf(ctx, "gRPC server failed to listen: %v", err)
	}

	gRpcSrv := grpc.NewServer()
	docqueuepb.RegisterQueueServiceServer(gRpcSrv, grpcSvc.NewGrpcService(qSvc, l))

	g.Go(func() error {
		l.Infof(ctx, "gRPC server is listening on port: %d", cfg.Server.GRpcPort)
		return gRpcSrv.Serve(lnr)
	})

	// HTTP server
	var proc service.QueueProcessor
	if cfg.Queue.SchedulerEnabled {
		proc = queueProcessor
	}
	h := httpDelivery.NewHTTPHandler(qSvc, proc, l, cfg.Queue.TokenTTL)

	httpSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      httpDelivery.NewRouter(h, l, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g.Go(func() error {
		l.Infof(ctx, "HTTP server is listening on port: %d", cfg.Server.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		l.Info(context.Background(), "Server shutting down...")

		if cfg.Queue.SchedulerEnabled {
			if err := queueProcessor.Stop(); err != nil {
				l.Errorf(context.Background(), "Failed to stop queue processor: %v", err)
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if !pkgGrpc.GracefulStop(shutdownCtx, gRpcSrv) {
			l.Warn(context.Background(), "gRPC graceful stop timed out, open streams were closed")
		}
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		l.Errorf(context.Background(), "Server stopped with error: %v", err)
	}

	l.Info(context.Background(), "Server exited")
}
