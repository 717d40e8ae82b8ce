// Package parser extracts one reservation from a semi-structured text
// document in a single forward pass over its lines.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/avilahotel/reservas/internal/hotel"
)

const (
	markerClientName  = "Nombre del cliente"
	markerEmail       = "correo"
	markerNights      = "numero de noches"
	markerStartDate   = "fecha inicio"
	markerRoomSection = "----Habitaciones-----"
)

// Parse scans the document and returns the extracted reservation input.
// Markers are matched in a fixed priority order per line; lines with no
// marker are only interpreted while inside the room section. A missing
// required field after the full scan yields a *hotel.InputError, the
// expected outcome for malformed input. A night count that is not an
// integer is fatal and is not substituted with a default.
func Parse(r io.Reader) (*hotel.ReservationInput, error) {
	var (
		client    *hotel.Client
		email     string
		nights    int
		startDate string
		rooms     []hotel.Room
	)

	insideRoomSection := false

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		switch {
		case strings.Contains(line, markerClientName):
			// The name lives on the next non-blank line.
			for scanner.Scan() {
				next := strings.TrimSpace(scanner.Text())
				if next != "" {
					client = hotel.NewClient(next, "")

					break
				}
			}

		case strings.Contains(line, markerEmail):
			parts := strings.Fields(line)
			if len(parts) < 2 {
				return nil, fmt.Errorf("line %q: %w", line, ErrEmailToken)
			}

			email = parts[1]
			if client != nil {
				client.Email = email
			}

		case strings.Contains(line, markerNights):
			parts := strings.Fields(line)

			n, err := strconv.Atoi(parts[len(parts)-1])
			if err != nil {
				return nil, fmt.Errorf("parse night count from line %q: %w", line, err)
			}

			nights = n

		case strings.Contains(line, markerStartDate):
			parts := strings.Fields(line)
			startDate = parts[len(parts)-1]

		case strings.Contains(line, markerRoomSection):
			// First occurrence opens the section, second closes it. An odd
			// number of delimiters leaves scanning on for the rest of the
			// document.
			insideRoomSection = !insideRoomSection

		case insideRoomSection:
			if kind, ok := classifyRoomLine(line); ok {
				rooms = append(rooms, hotel.NewRoom(kind, len(rooms)+1))
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan document: %w", err)
	}

	if err := checkRequired(client, nights, startDate, rooms); err != nil {
		return nil, err
	}

	return &hotel.ReservationInput{
		Client:    client,
		Rooms:     rooms,
		StartDate: startDate,
		Nights:    nights,
	}, nil
}

// classifyRoomLine matches the room keywords case-insensitively, first
// match wins: simple before doble before suite.
func classifyRoomLine(line string) (hotel.RoomKind, bool) {
	lower := strings.ToLower(line)

	switch {
	case strings.Contains(lower, "simple"):
		return hotel.KindSimple, true
	case strings.Contains(lower, "doble"):
		return hotel.KindDouble, true
	case strings.Contains(lower, "suite"):
		return hotel.KindSuite, true
	}

	return 0, false
}

func checkRequired(client *hotel.Client, nights int, startDate string, rooms []hotel.Room) error {
	inputErr := hotel.NewInputError()

	if client == nil {
		inputErr.AddError("cliente", "document has no client name block")
	}

	if nights == 0 {
		inputErr.AddError("noches", "document has no night count")
	}

	if startDate == "" {
		inputErr.AddError("fecha inicio", "document has no start date")
	}

	if len(rooms) == 0 {
		inputErr.AddError("habitaciones", "document lists no rooms")
	}

	if inputErr.FieldsCount() > 0 {
		return inputErr
	}

	return nil
}
