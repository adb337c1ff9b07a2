package valuation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/gomdp/agent"
)

func TestRules(t *testing.T) {
	values := []float64{1, -1, 0.5}

	tests := []struct {
		rule    Rule
		beta, w float64
		want    float64
	}{
		{Max, 0, 0, 1},
		{Min, 0, 0, -1},
		{Pessimism, 0, 1, 1},
		{Pessimism, 0, 0, -1},
		{Pessimism, 0, 0.25, -0.5},
		{Softmax, 0, 0, 0.5 / 3},
	}

	for _, test := range tests {
		f, err := New(test.rule, test.beta, test.w)
		require.NoError(t, err)
		assert.InDelta(t, test.want, f(values), 1e-12, "%v", test.rule)
	}
}

func TestSoftmaxInterpolates(t *testing.T) {
	values := []float64{1, -1}

	high, err := Expectation(values, 50)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, high, 1e-12)

	low, err := Expectation(values, -50)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, low, 1e-12)

	mid, err := Expectation(values, 0.5)
	require.NoError(t, err)
	assert.True(t, mid > 0 && mid < 1)
}

func TestEmptyValues(t *testing.T) {
	for rule := range ruleNames {
		f, err := New(rule, 10, 0.5)
		require.NoError(t, err)
		assert.Equal(t, 0.0, f(nil), "%v", rule)
	}

	_, err := Expectation(nil, 1)
	assert.ErrorIs(t, err, ErrDegenerateInput)
}

func TestUnknownRule(t *testing.T) {
	_, err := New(Rule(42), 0, 0)
	assert.ErrorIs(t, err, ErrUnknownRule)

	_, err = ParseRule("optimism")
	assert.ErrorIs(t, err, ErrUnknownRule)
	assert.True(t, agent.IsConfigurationError(err))
}

func TestRuleText(t *testing.T) {
	rule, err := ParseRule(" Pessimism ")
	require.NoError(t, err)
	assert.Equal(t, Pessimism, rule)

	data, err := json.Marshal(struct{ Policy Rule }{Softmax})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Policy": "softmax"}`, string(data))

	var decoded struct{ Policy Rule }
	require.NoError(t, json.Unmarshal([]byte(`{"Policy": "min"}`), &decoded))
	assert.Equal(t, Min, decoded.Policy)

	err = json.Unmarshal([]byte(`{"Policy": "greedy"}`), &decoded)
	assert.ErrorIs(t, err, ErrUnknownRule)
	assert.True(t, agent.IsConfigurationError(err))
}
