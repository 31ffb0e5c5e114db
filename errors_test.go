package coro

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrors_SentinelsAreDistinct(t *testing.T) {
	require.False(t, errors.Is(ErrTaskPanicked, ErrSchedulerMismatch))
	require.False(t, errors.Is(ErrSchedulerMismatch, ErrTaskPanicked))
}
