package grpc

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type cleanupFunc func()

// NewClientConn opens a plaintext connection to addr. Call the returned cleanup when done.
func NewClientConn(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, cleanupFunc, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("grpc client connection to %s failed: %w", addr, err)
	}

	return conn, func() { _ = conn.Close() }, nil
}
