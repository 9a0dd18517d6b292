package reservation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const blackoutLayout = "2006-01-02"

type Rates struct {
	Weekday uint `json:"weekday"`
	Weekend uint `json:"weekend"`
}

// Blackout is an inclusive range of calendar days during which a hotel only
// sells its regular rates.
type Blackout struct {
	From time.Time
	To   time.Time
}

func NewBlackout(from, to time.Time) (*Blackout, error) {
	b := &Blackout{From: day(from), To: day(to)}
	if b.To.Before(b.From) {
		return nil, fmt.Errorf("%s..%s: %w", b.From.Format(blackoutLayout), b.To.Format(blackoutLayout), ErrInvalidBlackout)
	}

	return b, nil
}

// Contains reports whether d falls on a day inside the range. A nil range
// contains nothing.
func (b *Blackout) Contains(d time.Time) bool {
	if b == nil {
		return false
	}

	d = day(d)

	return !d.Before(day(b.From)) && !d.After(day(b.To))
}

type blackoutJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (b Blackout) MarshalJSON() ([]byte, error) {
	return json.Marshal(blackoutJSON{
		From: b.From.Format(blackoutLayout),
		To:   b.To.Format(blackoutLayout),
	})
}

// UnmarshalJSON leaves a missing bound as the zero time so Validate can
// report it against the blackout field.
func (b *Blackout) UnmarshalJSON(data []byte) error {
	var raw blackoutJSON

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	from, err := parseBlackoutDay(raw.From)
	if err != nil {
		return fmt.Errorf("blackout.from: %w", err)
	}

	to, err := parseBlackoutDay(raw.To)
	if err != nil {
		return fmt.Errorf("blackout.to: %w", err)
	}

	b.From = from
	b.To = to

	return nil
}

func parseBlackoutDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	return time.Parse(blackoutLayout, s)
}

type Hotel struct {
	Name     string    `json:"name"`
	Rating   uint8     `json:"rating"`
	Regular  Rates     `json:"regular"`
	Rewards  Rates     `json:"rewards"`
	Blackout *Blackout `json:"blackout"`
}

func (h *Hotel) Validate() error {
	inputErr := newInputError()

	if strings.TrimSpace(h.Name) == "" {
		inputErr.addError("name", "provide hotel name")
	}

	if h.Rating == 0 {
		inputErr.addError("rating", "rating must be a positive number")
	}

	if h.Blackout != nil {
		if h.Blackout.From.IsZero() || h.Blackout.To.IsZero() {
			inputErr.addError("blackout", "provide both blackout.from and blackout.to")
		} else if day(h.Blackout.To).Before(day(h.Blackout.From)) {
			inputErr.addError("blackout", ErrInvalidBlackout.Error())
		}
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

func (h *Hotel) rates(c CustomerType) Rates {
	if c == Rewards {
		return h.Rewards
	}

	return h.Regular
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
