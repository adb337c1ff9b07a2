package agent

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultGob(t *testing.T) {
	m := choiceMDP(t)
	result := NewResult(m, []float64{0.9, 1, -1, 0, 0}, 12, Trained)

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(result))

	decoded := &Result{}
	require.NoError(t, gob.NewDecoder(&buf).Decode(decoded))

	assert.Equal(t, result.Q.RawVector().Data, decoded.Q.RawVector().Data)
	assert.Equal(t, result.V.RawVector().Data, decoded.V.RawVector().Data)
	assert.Equal(t, result.Pi, decoded.Pi)
	assert.Equal(t, 12, decoded.Iterations)
	assert.Equal(t, Trained, decoded.Status)
}
