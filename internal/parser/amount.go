package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/manav03panchal/zenith/internal/errors"
)

// ParseAmount parses a money amount such as "12.50", "$1,200" or "15".
func ParseAmount(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimLeft(s, "$€£¥")
	s = strings.ReplaceAll(s, ",", "")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.NewFieldError(errors.ErrInvalidAmount, "amount", input,
			"could not parse amount", "")
	}
	return d, nil
}
