package reservation

import (
	"cmp"
	"slices"
)

// CompareQuotes orders the cheaper quote first and, at equal totals, the
// better rated one. Quotes equal on both report 0.
func CompareQuotes(a, b Quote) int {
	if c := cmp.Compare(a.Total, b.Total); c != 0 {
		return c
	}

	return cmp.Compare(b.Rating, a.Rating)
}

// SelectCheapest returns the name of the best ranked hotel. Full ties go to
// the hotel listed first.
func SelectCheapest(hotels []Hotel, r Request) (string, error) {
	if len(hotels) == 0 {
		return "", ErrNoHotels
	}

	best := QuoteFor(hotels[0], r)

	for _, h := range hotels[1:] {
		if q := QuoteFor(h, r); CompareQuotes(q, best) < 0 {
			best = q
		}
	}

	return best.Hotel, nil
}

// Rank quotes every hotel and returns the quotes best first, keeping catalog
// order among full ties.
func Rank(hotels []Hotel, r Request) []Quote {
	quotes := make([]Quote, 0, len(hotels))

	for _, h := range hotels {
		quotes = append(quotes, QuoteFor(h, r))
	}

	slices.SortStableFunc(quotes, CompareQuotes)

	return quotes
}

func HotelReservation(text string, hotels []Hotel) (string, error) {
	r, err := ParseRequest(text)
	if err != nil {
		return "", err
	}

	return SelectCheapest(hotels, r)
}
