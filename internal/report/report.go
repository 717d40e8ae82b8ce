// Package report renders the fixed-layout billing report for a reservation.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/avilahotel/reservas/internal/hotel"
	"github.com/avilahotel/reservas/internal/logger"
)

// The billing section keeps its own price table. Note the Simple figure
// diverges from the model's stored price (400 vs 450); the source data
// carries both and the report reproduces them verbatim.
var billingPrices = map[string]float64{
	"Habitacion simple": 400.00,
	"Habitacion doble":  900.00,
	"Suite":             2500.00,
}

// The price section always iterates the catalog in this order, not in the
// reservation's own first-seen order.
var billingOrder = []string{"Habitacion simple", "Habitacion doble", "Suite"}

const separatorWidth = 46

type Generator struct {
	l *logger.Logger
}

func New(l *logger.Logger) *Generator {
	return &Generator{l: l}
}

// Render produces the full report text for one reservation.
func (g *Generator) Render(reservation *hotel.Reservation, client *hotel.Client) string {
	labels, counts := countByLabel(reservation.Rooms)

	var b strings.Builder

	fmt.Fprintf(&b, "¡Hola %s! aqui tienes los detalles de te reserva:\n\n", client.Name)
	fmt.Fprintf(&b, "Check-in: \t%s\n", reservation.StartDate)
	fmt.Fprintf(&b, "Checl out:\t%s\n\n", reservation.EndDate)
	fmt.Fprintf(
		&b,
		"Reservaste\t[%d] noches, [%d] habitaciones, [%d] personas\n\n",
		reservation.Nights,
		reservation.NumRooms,
		reservation.NumPeople,
	)
	b.WriteString("Detalles de reserva\n")

	for _, label := range labels {
		fmt.Fprintf(&b, "[%d] \t%s\n", counts[label], label)
	}

	fmt.Fprintf(&b, "\ne-mail de contacto\t[%s]\n\n\n", client.Email)
	b.WriteString("Detalles del precio:\n")

	var total float64

	for _, label := range billingOrder {
		count := counts[label]
		if count == 0 {
			continue
		}

		lineTotal := billingPrices[label] * float64(count)

		fmt.Fprintf(&b, "[%d] \t%s", count, label)

		// The Suite row is pushed further right than the Simple/Double rows.
		if label == "Suite" {
			fmt.Fprintf(&b, "\t\t\t\t%.2f$\n", lineTotal)
		} else {
			fmt.Fprintf(&b, "\t\t %.2f$\n", lineTotal)
		}

		total += lineTotal
	}

	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")
	fmt.Fprintf(&b, "Total:\t\t\t\t\t\t\t%.2f$\n", total)

	return b.String()
}

func (g *Generator) Write(w io.Writer, reservation *hotel.Reservation, client *hotel.Client) error {
	if _, err := io.WriteString(w, g.Render(reservation, client)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// WriteFile renders the report into the given path. The file handle is
// scoped to this call and released on every exit path.
func (g *Generator) WriteFile(path string, reservation *hotel.Reservation, client *hotel.Client) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file %v: %w", path, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close report file %v: %w", path, closeErr)
		}
	}()

	if err := g.Write(file, reservation, client); err != nil {
		return err
	}

	g.l.LogInfo("Reporte generado en %v", path)

	return nil
}

// countByLabel counts rooms per display label preserving the order in which
// each distinct label is first seen.
func countByLabel(rooms []hotel.Room) ([]string, map[string]int) {
	var labels []string

	counts := make(map[string]int)

	for _, room := range rooms {
		label := room.Label()
		if counts[label] == 0 {
			labels = append(labels, label)
		}

		counts[label]++
	}

	return labels, counts
}
