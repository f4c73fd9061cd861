package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/require"
)

func TestUnretriable(t *testing.T) {
	err := Unretriable(fmt.Errorf("bar"))
	require.True(t, IsUnretriable(err))
	var permErr *backoff.PermanentError
	require.True(t, errors.As(err, &permErr))
}

func TestPlainErrorsAreRetriable(t *testing.T) {
	err := fmt.Errorf("encoder exited: %w", errors.New("exit status 1"))
	require.False(t, IsUnretriable(err))
}

func TestUnretriableSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("writing source: %w", Unretriable(errors.New("missing chunk 2")))
	require.True(t, IsUnretriable(err))
}
