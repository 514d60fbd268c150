package currency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_AllSupportedCodes(t *testing.T) {
	t.Parallel()
	amounts := []float64{0.01, 1, 99.99, 10000, 123456.78}
	for _, code := range Supported() {
		rate, err := Rate(code)
		require.NoError(t, err)
		for _, amount := range amounts {
			got, err := Convert(amount, code)
			require.NoError(t, err)
			want := math.Round(amount*rate*100) / 100
			assert.Equal(t, want, got, "convert %v %s", amount, code)
		}
	}
}

func TestConvert_WorkedExample(t *testing.T) {
	t.Parallel()
	got, err := Convert(10000, EUR)
	require.NoError(t, err)
	assert.Equal(t, 10800.00, got)
}

func TestConvert_UnsupportedCurrency(t *testing.T) {
	t.Parallel()
	for _, code := range []Code{"XXX", "JPY", "BTC"} {
		_, err := Convert(100, code)
		assert.ErrorIs(t, err, ErrUnsupportedCurrency, "code %s", code)
	}
}

func TestConvert_InvalidAmount(t *testing.T) {
	t.Parallel()
	for _, amount := range []float64{0, -1, math.Inf(1), math.NaN()} {
		_, err := Convert(amount, USD)
		assert.Error(t, err, "amount %v", amount)
	}
}

func TestCode_IsValidFormat(t *testing.T) {
	t.Parallel()
	assert.True(t, Code("USD").IsValidFormat())
	assert.True(t, Code("ZZZ").IsValidFormat())
	assert.False(t, Code("usd").IsValidFormat())
	assert.False(t, Code("US").IsValidFormat())
	assert.False(t, Code("USDT").IsValidFormat())
	assert.False(t, Code("U1D").IsValidFormat())
}

func TestIsSupported(t *testing.T) {
	t.Parallel()
	assert.True(t, IsSupported(EUR))
	assert.False(t, IsSupported(Code("JPY")))
}
