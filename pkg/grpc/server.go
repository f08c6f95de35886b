package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// GracefulStop drains srv until ctx is done, then closes the remaining connections.
// Open server streams are cancelled by the hard stop. It reports whether the drain finished in time.
func GracefulStop(ctx context.Context, srv *grpc.Server) bool {
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-ctx.Done():
		srv.Stop()
		<-done
		return false
	}
}
