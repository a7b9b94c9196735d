package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLargestEmptyCircle(t *testing.T) {
	_, err := LargestEmptyCircle([]Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
	assert.ErrorIs(t, err, ErrNotImplemented)
}
