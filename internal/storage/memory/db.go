package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/avstrong/hotelres/internal/logger"
	"github.com/avstrong/hotelres/internal/reservation"
)

type Config struct {
	L *logger.Logger
}

// DB is the hotel catalog. Hotels are kept in insertion order, which is the
// order selection uses to break full ties.
type DB struct {
	mu     sync.RWMutex
	l      *logger.Logger
	hotels []reservation.Hotel
	byName map[string]int
}

func New(conf Config) *DB {
	//nolint:exhaustruct
	return &DB{
		l:      conf.L,
		byName: make(map[string]int),
	}
}

func (db *DB) ListHotels(_ context.Context) ([]reservation.Hotel, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]reservation.Hotel, len(db.hotels))
	for i, h := range db.hotels {
		out[i] = cloneHotel(h)
	}

	return out, nil
}

func (db *DB) GetHotel(_ context.Context, name string) (reservation.Hotel, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	idx, ok := db.byName[name]
	if !ok {
		return reservation.Hotel{}, reservation.ErrHotelNotFound
	}

	return cloneHotel(db.hotels[idx]), nil
}

func (db *DB) AddHotel(_ context.Context, hotel reservation.Hotel) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.byName[hotel.Name]; ok {
		db.l.LogInfo("type: storage, rejected duplicate hotel %q", hotel.Name)

		return fmt.Errorf("hotel %q: %w", hotel.Name, reservation.ErrHotelExists)
	}

	db.insert(hotel)

	return nil
}

// AddHotels stores the whole batch or nothing.
func (db *DB) AddHotels(_ context.Context, hotels []reservation.Hotel) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	seen := make(map[string]struct{}, len(hotels))

	for _, h := range hotels {
		_, stored := db.byName[h.Name]
		_, dup := seen[h.Name]

		if stored || dup {
			db.l.LogInfo("type: storage, rejected batch of %d hotels on duplicate %q", len(hotels), h.Name)

			return fmt.Errorf("hotel %q: %w", h.Name, reservation.ErrHotelExists)
		}

		seen[h.Name] = struct{}{}
	}

	for _, h := range hotels {
		db.insert(h)
	}

	return nil
}

func (db *DB) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.hotels)
}

func (db *DB) insert(hotel reservation.Hotel) {
	db.byName[hotel.Name] = len(db.hotels)
	db.hotels = append(db.hotels, cloneHotel(hotel))
}

func cloneHotel(h reservation.Hotel) reservation.Hotel {
	if h.Blackout != nil {
		b := *h.Blackout
		h.Blackout = &b
	}

	return h
}
