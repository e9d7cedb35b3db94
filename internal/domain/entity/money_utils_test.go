package entity

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/paywise/paywise-api/internal/domain/error"
)

func TestValidateAndConvertAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"10.", 1000},
			{" 42.42 ", 4242},
			{"1234567.89", 123456789},
			{"0", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ValidateAndConvertAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.00", errs.ErrNegativeAmount, "Negative amount"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"$100", errs.ErrInvalidAmount, "Currency symbol"},
			{"+5", errs.ErrInvalidAmount, "Explicit sign"},
			{".50", errs.ErrInvalidAmount, "Missing whole part"},
			{"99999999999999999999", errs.ErrAmountOverflow, "Overflow"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ValidateAndConvertAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestDecimalToCents(t *testing.T) {
	cents, err := DecimalToCents(decimal.RequireFromString("12.34"))
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cents)

	cents, err = DecimalToCents(decimal.RequireFromString("1.5e2"))
	require.NoError(t, err)
	assert.Equal(t, int64(15000), cents)

	_, err = DecimalToCents(decimal.RequireFromString("0.001"))
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	_, err = DecimalToCents(decimal.RequireFromString("-3"))
	assert.ErrorIs(t, err, errs.ErrNegativeAmount)

	_, err = DecimalToCents(decimal.RequireFromString("1e30"))
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)
}

func TestParseAmount(t *testing.T) {
	cents, err := ParseAmount("2.5E1")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), cents)

	cents, err = ParseAmount("25.10")
	require.NoError(t, err)
	assert.Equal(t, int64(2510), cents)

	_, err = ParseAmount("1e")
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestAmountInCentsToString(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{10000, "100.00"},
		{1, "0.01"},
		{10, "0.10"},
		{150, "1.50"},
		{123456789, "1234567.89"},
		{0, "0.00"},
		{-10000, "-100.00"},
		{-1, "-0.01"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, AmountInCentsToString(tc.cents))
		})
	}
}

func TestAddCents(t *testing.T) {
	sum, err := AddCents(100, 250)
	require.NoError(t, err)
	assert.Equal(t, int64(350), sum)

	_, err = AddCents(math.MaxInt64, 1)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)
}
