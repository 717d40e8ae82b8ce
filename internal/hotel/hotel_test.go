package hotel_test

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/avilahotel/reservas/internal/hotel"
	"github.com/avilahotel/reservas/internal/idgen/simple"
	"github.com/avilahotel/reservas/internal/logger"
	"github.com/avilahotel/reservas/internal/storage/memory"
)

func newManager(t *testing.T) (*hotel.Manager, *memory.DB) {
	t.Helper()

	l := logger.New(log.Default())
	db := memory.New(memory.Config{L: l})

	return hotel.New(l, db, simple.New()), db
}

func TestNewRoom_Catalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     hotel.RoomKind
		label    string
		capacity int
		price    int
	}{
		{hotel.KindSimple, "Habitacion simple", 1, 450},
		{hotel.KindDouble, "Habitacion doble", 2, 900},
		{hotel.KindSuite, "Suite", 4, 2500},
	}

	for _, tc := range tests {
		room := hotel.NewRoom(tc.kind, 1)

		if room.Label() != tc.label {
			t.Errorf("label=%q want=%q", room.Label(), tc.label)
		}
		if room.Capacity != tc.capacity {
			t.Errorf("%s: capacity=%d want=%d", tc.label, room.Capacity, tc.capacity)
		}
		if room.Price != tc.price {
			t.Errorf("%s: price=%d want=%d", tc.label, room.Price, tc.price)
		}
		if !room.Available {
			t.Errorf("%s: new room must start available", tc.label)
		}
	}
}

func TestRoom_Equal(t *testing.T) {
	t.Parallel()

	a := hotel.Room{Number: 1, Capacity: 2, Price: 900, Kind: hotel.KindDouble}
	b := hotel.Room{Number: 1, Capacity: 2, Price: 900, Kind: hotel.KindSimple, Available: true}

	if !a.Equal(b) {
		t.Error("rooms differing only in kind and availability must compare equal")
	}

	c := hotel.Room{Number: 2, Capacity: 2, Price: 900}
	if a.Equal(c) {
		t.Error("rooms with different numbers must not compare equal")
	}
}

func TestCreateReservation_DerivedFields(t *testing.T) {
	t.Parallel()

	m, db := newManager(t)

	input := &hotel.ReservationInput{
		Client: hotel.NewClient("Ana Gomez", "ana@test.com"),
		Rooms: []hotel.Room{
			hotel.NewRoom(hotel.KindSimple, 1),
			hotel.NewRoom(hotel.KindDouble, 2),
			hotel.NewRoom(hotel.KindDouble, 3),
		},
		StartDate: "10-05-2024",
		Nights:    3,
	}

	res, err := m.CreateReservation(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	if res.EndDate != "13-05-2024" {
		t.Errorf("end date=%q want=%q", res.EndDate, "13-05-2024")
	}
	if res.NumRooms != 3 {
		t.Errorf("num rooms=%d want=3", res.NumRooms)
	}
	if res.NumPeople != 5 {
		t.Errorf("num people=%d want=5", res.NumPeople)
	}
	if res.TotalPrice != 2250 {
		t.Errorf("total price=%d want=2250", res.TotalPrice)
	}

	for _, room := range res.Rooms {
		if room.Available {
			t.Errorf("room %d still available after reservation", room.Number)
		}
	}

	if len(input.Client.ReservationIDs) != 1 || input.Client.ReservationIDs[0] != res.ID {
		t.Errorf("client reservation ids=%v want=[%d]", input.Client.ReservationIDs, res.ID)
	}

	stored, err := db.GetReservation(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("GetReservation: %v", err)
	}
	if stored.ID != res.ID {
		t.Errorf("stored id=%d want=%d", stored.ID, res.ID)
	}

	client, err := db.GetClient(context.Background(), res.ClientID)
	if err != nil {
		t.Fatalf("GetClient: %v", err)
	}
	if client.Name != "Ana Gomez" {
		t.Errorf("client name=%q want=%q", client.Name, "Ana Gomez")
	}
}

func TestCreateReservation_LeapYear(t *testing.T) {
	t.Parallel()

	m, _ := newManager(t)

	input := &hotel.ReservationInput{
		Client:    hotel.NewClient("Luis", ""),
		Rooms:     []hotel.Room{hotel.NewRoom(hotel.KindSimple, 1)},
		StartDate: "28-02-2024",
		Nights:    2,
	}

	res, err := m.CreateReservation(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	if res.EndDate != "01-03-2024" {
		t.Errorf("end date=%q want=%q", res.EndDate, "01-03-2024")
	}
}

func TestCreateReservation_BadDate(t *testing.T) {
	t.Parallel()

	m, _ := newManager(t)

	input := &hotel.ReservationInput{
		Client:    hotel.NewClient("Luis", ""),
		Rooms:     []hotel.Room{hotel.NewRoom(hotel.KindSimple, 1)},
		StartDate: "2024-05-10",
		Nights:    2,
	}

	if _, err := m.CreateReservation(context.Background(), input); !errors.Is(err, hotel.ErrBadDate) {
		t.Fatalf("err=%v want ErrBadDate", err)
	}
}
