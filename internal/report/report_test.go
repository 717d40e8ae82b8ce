package report_test

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avilahotel/reservas/internal/hotel"
	"github.com/avilahotel/reservas/internal/logger"
	"github.com/avilahotel/reservas/internal/report"
)

func newGenerator() *report.Generator {
	return report.New(logger.New(log.Default()))
}

func anaReservation() (*hotel.Reservation, *hotel.Client) {
	client := hotel.NewClient("Ana Gomez", "ana@test.com")
	client.ID = 1

	rooms := []hotel.Room{
		hotel.NewRoom(hotel.KindSimple, 1),
		hotel.NewRoom(hotel.KindDouble, 2),
		hotel.NewRoom(hotel.KindDouble, 3),
	}

	return &hotel.Reservation{
		ID:         2,
		ClientID:   client.ID,
		Rooms:      rooms,
		StartDate:  "10-05-2024",
		Nights:     3,
		EndDate:    "13-05-2024",
		NumRooms:   3,
		NumPeople:  5,
		TotalPrice: 2250,
	}, client
}

func TestRender_FullTemplate(t *testing.T) {
	t.Parallel()

	res, client := anaReservation()

	// The billing section uses its own price table: Simple bills at 400.00
	// while the model stores 450. Both figures are in the source data and
	// both are intentionally kept.
	want := "¡Hola Ana Gomez! aqui tienes los detalles de te reserva:\n" +
		"\n" +
		"Check-in: \t10-05-2024\n" +
		"Checl out:\t13-05-2024\n" +
		"\n" +
		"Reservaste\t[3] noches, [3] habitaciones, [5] personas\n" +
		"\n" +
		"Detalles de reserva\n" +
		"[1] \tHabitacion simple\n" +
		"[2] \tHabitacion doble\n" +
		"\n" +
		"e-mail de contacto\t[ana@test.com]\n" +
		"\n" +
		"\n" +
		"Detalles del precio:\n" +
		"[1] \tHabitacion simple\t\t 400.00$\n" +
		"[2] \tHabitacion doble\t\t 1800.00$\n" +
		strings.Repeat("-", 46) + "\n" +
		"Total:\t\t\t\t\t\t\t2200.00$\n"

	got := newGenerator().Render(res, client)
	if got != want {
		t.Errorf("rendered report mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRender_FirstSeenLabelOrder(t *testing.T) {
	t.Parallel()

	client := hotel.NewClient("Luis", "luis@test.com")
	rooms := []hotel.Room{
		hotel.NewRoom(hotel.KindSuite, 1),
		hotel.NewRoom(hotel.KindSimple, 2),
		hotel.NewRoom(hotel.KindSuite, 3),
	}

	res := &hotel.Reservation{
		Rooms:      rooms,
		StartDate:  "01-01-2025",
		Nights:     1,
		EndDate:    "02-01-2025",
		NumRooms:   3,
		NumPeople:  9,
		TotalPrice: 5450,
	}

	got := newGenerator().Render(res, client)

	// Details follow first-seen order: Suite before Simple.
	details := strings.Index(got, "[2] \tSuite\n[1] \tHabitacion simple\n")
	if details < 0 {
		t.Errorf("details section not in first-seen order:\n%s", got)
	}

	// The billing section follows canonical catalog order instead.
	simpleRow := strings.Index(got, "[1] \tHabitacion simple\t\t 400.00$")
	suiteRow := strings.Index(got, "[2] \tSuite\t\t\t\t5000.00$")

	if simpleRow < 0 || suiteRow < 0 || suiteRow < simpleRow {
		t.Errorf("billing section not in canonical order:\n%s", got)
	}
}

func TestRender_OnlyPresentKindsBilled(t *testing.T) {
	t.Parallel()

	client := hotel.NewClient("Luis", "luis@test.com")
	res := &hotel.Reservation{
		Rooms:      []hotel.Room{hotel.NewRoom(hotel.KindDouble, 1)},
		StartDate:  "01-01-2025",
		Nights:     1,
		EndDate:    "02-01-2025",
		NumRooms:   1,
		NumPeople:  2,
		TotalPrice: 900,
	}

	got := newGenerator().Render(res, client)

	if strings.Contains(got, "Habitacion simple") || strings.Contains(got, "Suite") {
		t.Errorf("absent kinds must not appear in the billing section:\n%s", got)
	}
	if !strings.Contains(got, "Total:\t\t\t\t\t\t\t900.00$") {
		t.Errorf("total mismatch:\n%s", got)
	}
	if !strings.Contains(got, strings.Repeat("-", 46)+"\n") {
		t.Errorf("missing 46-dash separator rule:\n%s", got)
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	res, client := anaReservation()
	path := filepath.Join(t.TempDir(), "output.txt")

	if err := newGenerator().WriteFile(path, res, client); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report back: %v", err)
	}

	if string(b) != newGenerator().Render(res, client) {
		t.Error("file content differs from rendered report")
	}
}
