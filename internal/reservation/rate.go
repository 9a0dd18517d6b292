package reservation

import "time"

type DayClass int

const (
	Weekday DayClass = iota
	Weekend
)

func ClassifyDay(d time.Time) DayClass {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return Weekend
	default:
		return Weekday
	}
}

type rateKey struct {
	blackout bool
	customer CustomerType
	class    DayClass
}

type rateSource struct {
	table CustomerType
	class DayClass
}

// rateTable lists every combination a night can fall into. Inside a blackout
// the regular table applies whoever books.
var rateTable = map[rateKey]rateSource{
	{blackout: false, customer: Regular, class: Weekday}: {table: Regular, class: Weekday},
	{blackout: false, customer: Regular, class: Weekend}: {table: Regular, class: Weekend},
	{blackout: false, customer: Rewards, class: Weekday}: {table: Rewards, class: Weekday},
	{blackout: false, customer: Rewards, class: Weekend}: {table: Rewards, class: Weekend},
	{blackout: true, customer: Regular, class: Weekday}:  {table: Regular, class: Weekday},
	{blackout: true, customer: Regular, class: Weekend}:  {table: Regular, class: Weekend},
	{blackout: true, customer: Rewards, class: Weekday}:  {table: Regular, class: Weekday},
	{blackout: true, customer: Rewards, class: Weekend}:  {table: Regular, class: Weekend},
}

func NightlyRate(h Hotel, customer CustomerType, date time.Time) uint {
	src := rateTable[rateKey{
		blackout: h.Blackout.Contains(date),
		customer: customer,
		class:    ClassifyDay(date),
	}]

	rates := h.rates(src.table)
	if src.class == Weekend {
		return rates.Weekend
	}

	return rates.Weekday
}

type Quote struct {
	Hotel  string `json:"hotel"`
	Rating uint8  `json:"rating"`
	Total  uint   `json:"total"`
}

func QuoteFor(h Hotel, r Request) Quote {
	var total uint

	for _, date := range r.Dates {
		total += NightlyRate(h, r.CustomerType, date)
	}

	return Quote{
		Hotel:  h.Name,
		Rating: h.Rating,
		Total:  total,
	}
}
