package grpclib

import (
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"testing"
)

func TestRecoveryHandlerFunc(t *testing.T) {
	err := RecoveryHandlerFunc("nil pointer")

	st, ok := status.FromError(err)
	assert.Equal(t, true, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "panic: nil pointer", st.Message())
}
