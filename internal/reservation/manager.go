package reservation

import (
	"context"
	"fmt"

	"github.com/avstrong/hotelres/internal/logger"
)

type storageReader interface {
	ListHotels(ctx context.Context) ([]Hotel, error)
	GetHotel(ctx context.Context, name string) (Hotel, error)
}

type storageWriter interface {
	AddHotel(ctx context.Context, hotel Hotel) error
}

type storage interface {
	storageReader
	storageWriter
}

type Manager struct {
	l       *logger.Logger
	storage storage
}

func New(l *logger.Logger, storage storage) *Manager {
	return &Manager{
		l:       l,
		storage: storage,
	}
}

// Cheapest parses text and picks the best hotel from one catalog snapshot.
func (m *Manager) Cheapest(ctx context.Context, text string) (string, error) {
	req, err := ParseRequest(text)
	if err != nil {
		return "", err
	}

	hotels, err := m.storage.ListHotels(ctx)
	if err != nil {
		return "", fmt.Errorf("list hotels from storage: %w", err)
	}

	name, err := SelectCheapest(hotels, req)
	if err != nil {
		return "", err
	}

	m.l.LogDebug("Selected %q for %v customer over %d nights among %d hotels", name, req.CustomerType, req.Nights(), len(hotels))

	return name, nil
}

func (m *Manager) Quotes(ctx context.Context, text string) (Request, []Quote, error) {
	req, err := ParseRequest(text)
	if err != nil {
		return Request{}, nil, err
	}

	hotels, err := m.storage.ListHotels(ctx)
	if err != nil {
		return Request{}, nil, fmt.Errorf("list hotels from storage: %w", err)
	}

	if len(hotels) == 0 {
		return Request{}, nil, ErrNoHotels
	}

	return req, Rank(hotels, req), nil
}

func (m *Manager) Hotels(ctx context.Context) ([]Hotel, error) {
	hotels, err := m.storage.ListHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels from storage: %w", err)
	}

	return hotels, nil
}

func (m *Manager) Hotel(ctx context.Context, name string) (Hotel, error) {
	hotel, err := m.storage.GetHotel(ctx, name)
	if err != nil {
		return Hotel{}, fmt.Errorf("get hotel %q from storage: %w", name, err)
	}

	return hotel, nil
}

func (m *Manager) AddHotel(ctx context.Context, hotel Hotel) error {
	if err := hotel.Validate(); err != nil {
		return err
	}

	if err := m.storage.AddHotel(ctx, hotel); err != nil {
		return fmt.Errorf("add hotel %q to storage: %w", hotel.Name, err)
	}

	m.l.LogInfo("Hotel %q has been added", hotel.Name)

	return nil
}
