package intutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	path := []int{0, 4, 2, 4}

	assert.Equal(t, 1, Index(path, 4))
	assert.Equal(t, -1, Index(path, 7))
	assert.True(t, Contains(path, 2))
	assert.False(t, Contains(nil, 0))
}
