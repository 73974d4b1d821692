package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkLabel(t *testing.T) {
	assert.Equal(t, "up", LinkLabel(true))
	assert.Equal(t, "down", LinkLabel(false))
}
