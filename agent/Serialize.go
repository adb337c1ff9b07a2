package agent

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// result is the gob representation of a Result
type result struct {
	Q, V       []float64
	Pi         []int
	Iterations int
	Status     Status
}

// GobEncode implements the gob.GobEncoder interface
func (r *Result) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	err := enc.Encode(result{
		Q:          r.Q.RawVector().Data,
		V:          r.V.RawVector().Data,
		Pi:         r.Pi,
		Iterations: r.Iterations,
		Status:     r.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("gobEncode: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface
func (r *Result) GobDecode(in []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(in))

	var decoded result
	if err := dec.Decode(&decoded); err != nil {
		return fmt.Errorf("gobDecode: %w", err)
	}

	r.Q = newVec(decoded.Q)
	r.V = newVec(decoded.V)
	r.Pi = decoded.Pi
	r.Iterations = decoded.Iterations
	r.Status = decoded.Status
	return nil
}

// newVec returns a vector over data, which gonum refuses for empty
// slices
func newVec(data []float64) *mat.VecDense {
	if len(data) == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(len(data), data)
}
