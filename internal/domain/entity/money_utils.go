package entity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/paywise/paywise-api/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

var (
	hundred     = decimal.NewFromInt(100)
	maxCentsDec = decimal.NewFromInt(math.MaxInt64)
)

// ValidateAndConvertAmount validates a string amount and converts it to cents.
// Accepted forms are "10", "10.", "10.5" and "10.50"; anything with more than
// two decimal places, a sign, separators or symbols is rejected.
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string
	if len(parts) == 1 {
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	if parts[0] == "" || !isDigits(integerValue) {
		return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidAmount, amount)
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errs.ErrAmountOverflow
		}
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// DecimalToCents converts a decimal amount (as decoded from a JSON number) to cents.
// The value must not carry more than two decimal places.
func DecimalToCents(d decimal.Decimal) (int64, error) {
	if d.IsNegative() {
		return 0, errs.ErrNegativeAmount
	}
	if !d.Equal(d.Truncate(MaxDecimalPlaces)) {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	cents := d.Mul(hundred)
	if cents.GreaterThan(maxCentsDec) {
		return 0, errs.ErrAmountOverflow
	}
	return cents.IntPart(), nil
}

// ParseAmount accepts either a JSON number or a decimal string and converts it to cents
func ParseAmount(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if strings.ContainsAny(raw, "eE") {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
		}
		return DecimalToCents(d)
	}
	return ValidateAndConvertAmount(raw)
}

// AmountInCentsToString converts integer amount to a decimal string
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
func AmountInCentsToString(amountInCents int64) string {
	isNegative := amountInCents < 0
	if isNegative {
		amountInCents = -amountInCents
	}

	amountStr := strconv.FormatInt(amountInCents, 10)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}

// AddCents adds two non-negative cent amounts, refusing to overflow
func AddCents(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, errs.ErrAmountOverflow
	}
	return a + b, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
