package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertOutcome_String(t *testing.T) {
	assert.Equal(t, "inserted", Inserted.String())
	assert.Equal(t, "already_exists", AlreadyExists.String())
	assert.Equal(t, "unknown", InsertOutcome(0).String())
}

func TestSentinels_WrapAndMatch(t *testing.T) {
	err := fmt.Errorf("sync T1: %w", ErrLinkDown)
	assert.True(t, errors.Is(err, ErrLinkDown))
	assert.False(t, errors.Is(err, ErrUnknownTerminal))
}
