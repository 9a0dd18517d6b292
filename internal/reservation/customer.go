package reservation

import (
	"fmt"
	"strings"
)

type CustomerType int

const (
	Regular CustomerType = iota
	Rewards
)

func ParseCustomerType(s string) (CustomerType, error) {
	switch strings.ToLower(s) {
	case "regular":
		return Regular, nil
	case "rewards":
		return Rewards, nil
	default:
		return Regular, &ParseError{Kind: ErrInvalidCustomerType, Value: s}
	}
}

func (c CustomerType) String() string {
	switch c {
	case Regular:
		return "regular"
	case Rewards:
		return "rewards"
	default:
		return fmt.Sprintf("CustomerType(%d)", int(c))
	}
}

func (c CustomerType) MarshalText() ([]byte, error) {
	if c != Regular && c != Rewards {
		return nil, fmt.Errorf("marshal %v: %w", c, ErrInvalidCustomerType)
	}

	return []byte(c.String()), nil
}

func (c *CustomerType) UnmarshalText(text []byte) error {
	parsed, err := ParseCustomerType(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
