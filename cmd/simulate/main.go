package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/vogiaan1904/docqueue/internal/service"
	pkgGrpc "github.com/vogiaan1904/docqueue/pkg/grpc"
	docqueuepb "github.com/vogiaan1904/docqueue/protogen/docqueue"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	addr          = flag.String("addr", "localhost:50056", "gRPC address of the queue server")
	queue         = flag.String("queue", service.DefaultQueueName, "Queue to join")
	numUsers      = flag.Int("users", 300, "Number of users to register")
	concurrency   = flag.Int("concurrency", 20, "Max concurrent registrations")
	joinRate      = flag.Duration("join-rate", 10*time.Millisecond, "Time between user joins (0 for maximum speed)")
	simulate      = flag.Bool("simulate", false, "Keep admitting users until the queue drains")
	allowCount    = flag.Int64("allow-count", 10, "Users admitted per allow call in simulation mode")
	allowInterval = flag.Duration("allow-interval", 2*time.Second, "Interval between allow calls in simulation mode")
)

type stats struct {
	registered atomic.Int64
	duplicates atomic.Int64
	failed     atomic.Int64
	admitted   atomic.Int64
}

func main() {
	flag.Parse()

	if *numUsers <= 0 {
		fmt.Println("Error: --users must be positive")
		flag.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, cleanup, err := pkgGrpc.NewClientConn(*addr)
	if err != nil {
		fmt.Printf("Failed to connect to %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer cleanup()

	client := docqueuepb.NewQueueServiceClient(conn)
	st := &stats{}

	userIDs := registerUsers(ctx, client, st)
	fmt.Printf("\nRegistered %d users in queue %q (%d duplicates, %d failed)\n",
		st.registered.Load(), *queue, st.duplicates.Load(), st.failed.Load())

	if len(userIDs) > 0 {
		last := userIDs[len(userIDs)-1]
		if s, err := client.GetQueueStatus(ctx, &docqueuepb.UserRequest{Queue: *queue, UserId: last}); err == nil {
			fmt.Printf("Queue size: %d, last user rank: %d\n", s.TotalQueueSize, s.UserRank)
		}
	}

	if !*simulate {
		fmt.Println("\nTip: use --simulate to admit users continuously")
		return
	}

	fmt.Printf("\nAdmitting %d users every %v. Press Ctrl+C to stop\n\n", *allowCount, *allowInterval)
	runSimulation(ctx, client, userIDs, st)

	fmt.Printf("\nAdmitted %d users\n", st.admitted.Load())
}

func registerUsers(ctx context.Context, client docqueuepb.QueueServiceClient, st *stats) []string {
	runID := uuid.NewString()[:8]
	userIDs := make([]string, *numUsers)
	for i := range userIDs {
		userIDs[i] = fmt.Sprintf("sim-%s-%d", runID, i+1)
	}

	fmt.Printf("Registering %d users with concurrency %d...\n", *numUsers, *concurrency)
	start := time.Now()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(*concurrency, 1))

	for _, id := range userIDs {
		if gCtx.Err() != nil {
			break
		}

		g.Go(func() error {
			_, err := client.RegisterUser(gCtx, &docqueuepb.UserRequest{Queue: *queue, UserId: id})
			switch {
			case err == nil:
				st.registered.Add(1)
			case status.Code(err) == codes.AlreadyExists:
				st.duplicates.Add(1)
			default:
				st.failed.Add(1)
				fmt.Printf("Failed to register %s: %v\n", id, err)
			}
			return nil
		})

		if *joinRate > 0 {
			time.Sleep(*joinRate)
		}
	}
	_ = g.Wait()

	fmt.Printf("Registration took %v\n", time.Since(start).Round(time.Millisecond))
	return userIDs
}

func runSimulation(ctx context.Context, client docqueuepb.QueueServiceClient, userIDs []string, st *stats) {
	ticker := time.NewTicker(*allowInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nStopping simulation...")
			return
		case <-ticker.C:
			out, err := client.AllowUsers(ctx, &docqueuepb.AllowUsersRequest{Queue: *queue, Count: *allowCount})
			if err != nil {
				fmt.Printf("Allow failed: %v\n", err)
				continue
			}
			st.admitted.Add(out.Admitted)

			remaining := int64(len(userIDs)) - st.admitted.Load()
			fmt.Printf("[%s] admitted %d, total %d, waiting ~%d\n",
				time.Now().Format("15:04:05"), out.Admitted, st.admitted.Load(), max(remaining, 0))

			if out.Admitted == 0 {
				fmt.Println("Queue drained")
				return
			}
		}
	}
}
