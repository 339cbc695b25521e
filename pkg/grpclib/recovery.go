package grpclib

import (
	"fmt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"os"
	"runtime/debug"
)

// RecoveryHandlerFunc converts a panic in a gRPC handler to codes.Internal
func RecoveryHandlerFunc(p interface{}) error {
	fmt.Fprintf(os.Stderr, "[PANIC] %v\n%s\n", p, debug.Stack())
	return status.Errorf(codes.Internal, "panic: %v", p)
}
