package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(0.0, 0.0, 1.0))
	assert.True(t, IsInRange(0.0, 1.0, 1.0))
	assert.False(t, IsInRange(0.0, 1.01, 1.0))
	assert.False(t, IsInRange(0, -1, 10))
}

func TestIsBelow(t *testing.T) {
	assert.True(t, IsBelow(0, 59, 60))
	assert.False(t, IsBelow(0, 60, 60))
	assert.True(t, IsBelow(0.0, 59.99, 60.0))
	assert.False(t, IsBelow(uint64(1), 0, 60))
}
