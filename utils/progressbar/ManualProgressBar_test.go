package progressbar

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManualProgressBar(t *testing.T) {
	var buf bytes.Buffer
	bar := NewManualProgressBar(&buf, 10, 4)

	bar.Increment()
	bar.Display()
	assert.Contains(t, buf.String(), "25.00%")

	for i := 0; i < 10; i++ {
		bar.Increment()
	}
	assert.Equal(t, 1.0, bar.Progress())

	bar.Display()
	bar.Close()
	assert.Contains(t, buf.String(), "100.00%")
}
