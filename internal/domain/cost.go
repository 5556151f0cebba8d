package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cost is a monetary amount as reported by the vehicle API. The API sends
// DECIMAL columns either as JSON numbers or as strings; both decode here.
type Cost struct {
	amount decimal.Decimal
}

// NewCost wraps a decimal amount
func NewCost(amount decimal.Decimal) Cost {
	return Cost{amount: amount}
}

// ParseCost never fails: empty, malformed or non-finite input is zero.
func ParseCost(s string) Cost {
	s = strings.TrimSpace(s)
	if s == "" {
		return Cost{amount: decimal.Zero}
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Cost{amount: decimal.Zero}
	}
	return Cost{amount: amount}
}

// Amount returns the decimal value, zero for a missing cost
func (c Cost) Amount() decimal.Decimal {
	return c.amount
}

func (c Cost) String() string {
	return c.amount.StringFixed(2)
}

func (c Cost) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.amount.StringFixed(2))), nil
}

func (c *Cost) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*c = Cost{amount: decimal.Zero}
		return nil
	}

	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}

	*c = ParseCost(raw)
	return nil
}
