package reservation

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/avstrong/hotelres/internal/logger"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func mustBlackout(t *testing.T, from, to time.Time) *Blackout {
	t.Helper()

	b, err := NewBlackout(from, to)
	if err != nil {
		t.Fatalf("new blackout: %v", err)
	}

	return b
}

func lakeInn() Hotel {
	return Hotel{
		Name:    "Lake Inn",
		Rating:  3,
		Regular: Rates{Weekday: 110, Weekend: 90},
		Rewards: Rates{Weekday: 80, Weekend: 80},
	}
}

func fallsInn(t *testing.T) Hotel {
	return Hotel{
		Name:     "Falls Inn",
		Rating:   4,
		Regular:  Rates{Weekday: 160, Weekend: 60},
		Rewards:  Rates{Weekday: 110, Weekend: 50},
		Blackout: mustBlackout(t, date(2009, 12, 23), date(2010, 1, 3)),
	}
}

func forestInn(t *testing.T) Hotel {
	return Hotel{
		Name:     "Forest Inn",
		Rating:   5,
		Regular:  Rates{Weekday: 220, Weekend: 150},
		Rewards:  Rates{Weekday: 100, Weekend: 40},
		Blackout: mustBlackout(t, date(2009, 7, 1), date(2009, 9, 30)),
	}
}

func catalog(t *testing.T) []Hotel {
	return []Hotel{lakeInn(), fallsInn(t), forestInn(t)}
}

func discardLogger() *logger.Logger {
	return logger.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
