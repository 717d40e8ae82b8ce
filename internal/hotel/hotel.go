package hotel

import (
	"context"
	"fmt"
	"time"

	"github.com/avilahotel/reservas/internal/logger"
)

// DateLayout is the document date format, two-digit day, two-digit month,
// four-digit year.
const DateLayout = "02-01-2006"

type idGenerator interface {
	GetID(ctx context.Context) (int, error)
}

type storageReader interface {
	GetClient(ctx context.Context, id int) (*Client, error)
	GetReservation(ctx context.Context, id int) (*Reservation, error)
}

type storageWriter interface {
	SaveClient(ctx context.Context, client *Client) error
	SaveReservation(ctx context.Context, reservation *Reservation) error
}

type storage interface {
	storageReader
	storageWriter
}

type Manager struct {
	l           *logger.Logger
	storage     storage
	idGenerator idGenerator
}

func New(l *logger.Logger, storage storage, idGenerator idGenerator) *Manager {
	return &Manager{
		l:           l,
		storage:     storage,
		idGenerator: idGenerator,
	}
}

// CreateReservation builds the one reservation of a parsed document. The
// derived fields are computed here once; the rooms are handed over for the
// reservation's lifetime and never released. A start date that does not
// match DateLayout is a fatal error, never substituted with a default.
func (m *Manager) CreateReservation(ctx context.Context, input *ReservationInput) (*Reservation, error) {
	start, err := time.Parse(DateLayout, input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start date %q: %w", input.StartDate, ErrBadDate)
	}

	end := start.AddDate(0, 0, input.Nights)

	if input.Client.ID == 0 {
		id, err := m.idGenerator.GetID(ctx)
		if err != nil {
			return nil, ErrNextID
		}

		input.Client.ID = id
	}

	id, err := m.idGenerator.GetID(ctx)
	if err != nil {
		return nil, ErrNextID
	}

	var people, price int

	for _, room := range input.Rooms {
		people += room.Capacity
		price += room.Price
	}

	rooms := make([]Room, len(input.Rooms))

	for i, room := range input.Rooms {
		room.Available = false
		rooms[i] = room
	}

	reservation := &Reservation{
		ID:         id,
		ClientID:   input.Client.ID,
		Rooms:      rooms,
		StartDate:  input.StartDate,
		Nights:     input.Nights,
		EndDate:    end.Format(DateLayout),
		NumRooms:   len(rooms),
		NumPeople:  people,
		TotalPrice: price,
	}

	input.Client.ReservationIDs = append(input.Client.ReservationIDs, reservation.ID)

	if err := m.storage.SaveClient(ctx, input.Client); err != nil {
		return nil, fmt.Errorf("save client to storage: %w", err)
	}

	if err := m.storage.SaveReservation(ctx, reservation); err != nil {
		return nil, fmt.Errorf("save reservation to storage: %w", err)
	}

	return reservation, nil
}

// Reservation looks a stored reservation up by id.
func (m *Manager) Reservation(ctx context.Context, id int) (*Reservation, error) {
	reservation, err := m.storage.GetReservation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation %v from storage: %w", id, err)
	}

	return reservation, nil
}

// Client looks a stored client up by id.
func (m *Manager) Client(ctx context.Context, id int) (*Client, error) {
	client, err := m.storage.GetClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get client %v from storage: %w", id, err)
	}

	return client, nil
}
