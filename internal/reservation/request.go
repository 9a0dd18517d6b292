package reservation

import (
	"strings"
	"time"
)

// dateLayout reads tokens such as 16Mar2009(mon). The weekday label must be a
// valid abbreviation but is not checked against the date itself.
const dateLayout = "02Jan2006(Mon)"

var weekdayAliases = strings.NewReplacer("tues", "tue", "thur", "thu")

type Request struct {
	CustomerType CustomerType
	Dates        []time.Time
}

// ParseRequest reads "<customer-type>: <date>, <date>, ...". It stops at the
// first token it cannot read; dates keep their input order and duplicates.
func ParseRequest(text string) (Request, error) {
	customer, dates, found := strings.Cut(text, ":")
	if !found {
		return Request{}, &ParseError{Kind: ErrInvalidFormat, Value: text}
	}

	customerType, err := ParseCustomerType(strings.TrimSpace(customer))
	if err != nil {
		return Request{}, err
	}

	tokens := strings.Split(weekdayAliases.Replace(dates), ",")
	parsed := make([]time.Time, 0, len(tokens))

	for _, token := range tokens {
		token = strings.TrimSpace(token)

		date, err := time.Parse(dateLayout, token)
		if err != nil {
			return Request{}, &ParseError{Kind: ErrInvalidDate, Value: token}
		}

		parsed = append(parsed, date)
	}

	return Request{
		CustomerType: customerType,
		Dates:        parsed,
	}, nil
}

// Nights is the number of priced dates, duplicates included.
func (r Request) Nights() int {
	return len(r.Dates)
}
