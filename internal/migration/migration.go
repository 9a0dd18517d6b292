package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/avstrong/hotelres/internal/logger"
	"github.com/avstrong/hotelres/internal/reservation"
)

type storage interface {
	AddHotels(ctx context.Context, hotels []reservation.Hotel) error
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func blackout(from, to time.Time) *reservation.Blackout {
	b, err := reservation.NewBlackout(from, to)
	if err != nil {
		panic(err)
	}

	return b
}

// Hotels is the default catalog.
func Hotels() []reservation.Hotel {
	return []reservation.Hotel{
		{
			Name:    "Lake Inn",
			Rating:  3,
			Regular: reservation.Rates{Weekday: 110, Weekend: 90},
			Rewards: reservation.Rates{Weekday: 80, Weekend: 80},
		},
		{
			Name:     "Falls Inn",
			Rating:   4,
			Regular:  reservation.Rates{Weekday: 160, Weekend: 60},
			Rewards:  reservation.Rates{Weekday: 110, Weekend: 50},
			Blackout: blackout(date(2009, 12, 23), date(2010, 1, 3)),
		},
		{
			Name:     "Forest Inn",
			Rating:   5,
			Regular:  reservation.Rates{Weekday: 220, Weekend: 150},
			Rewards:  reservation.Rates{Weekday: 100, Weekend: 40},
			Blackout: blackout(date(2009, 7, 1), date(2009, 9, 30)),
		},
	}
}

func Up(ctx context.Context, l *logger.Logger, storage storage) error {
	hotels := Hotels()

	if err := storage.AddHotels(ctx, hotels); err != nil {
		return fmt.Errorf("save hotels to storage: %w", err)
	}

	l.LogInfo("Seeded catalog with %d hotels", len(hotels))

	return nil
}
