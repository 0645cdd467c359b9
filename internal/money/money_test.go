package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFloat_Rounds(t *testing.T) {
	assert.Equal(t, Amount(100000), FromFloat(1000))
	assert.Equal(t, Amount(99950), FromFloat(999.50))
	assert.Equal(t, Amount(100), FromFloat(0.999))
	assert.Equal(t, Amount(0), FromFloat(0))
}

func TestParse_Lenient(t *testing.T) {
	assert.Equal(t, Amount(125000), Parse("1250"))
	assert.Equal(t, Amount(125050), Parse(" 1250.50 "))
	assert.Equal(t, Amount(0), Parse("not-a-price"))
	assert.Equal(t, Amount(0), Parse(""))
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Amount
	}{
		{"number", `1000`, 100000},
		{"decimal number", `999.5`, 99950},
		{"numeric string", `"1250.00"`, 125000},
		{"garbage string", `"abc"`, 0},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.input), &a))
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestMarshalJSON_TwoDecimals(t *testing.T) {
	data, err := json.Marshal(Amount(125050))
	require.NoError(t, err)
	assert.Equal(t, "1250.50", string(data))
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, a := range []Amount{0, 1, 99, 100, 123456789} {
		data, err := json.Marshal(a)
		require.NoError(t, err)
		var back Amount
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, a, back)
	}
}

func TestString_Formatting(t *testing.T) {
	assert.Equal(t, "₱0.00", Amount(0).String())
	assert.Equal(t, "₱9.05", Amount(905).String())
	assert.Equal(t, "₱1,250.00", Amount(125000).String())
	assert.Equal(t, "₱1,234,567.89", Amount(123456789).String())
	assert.Equal(t, "-₱10.00", Amount(-1000).String())
}

func TestMul(t *testing.T) {
	assert.Equal(t, Amount(300000), Amount(100000).Mul(3))
}
