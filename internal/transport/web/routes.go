package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/avilahotel/reservas/internal/hotel"
	"github.com/avilahotel/reservas/internal/parser"
)

const maxDocumentSize = 1 << 20

// createReservationHandler runs the document pipeline for one request: the
// raw reservation document arrives as the body, the rendered report goes
// back as the response. Each request works on a fresh client graph.
func (s *Server) createReservationHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	input, err := parser.Parse(bytes.NewReader(body))
	if inputErr := hotel.IsInputError(err); inputErr != nil {
		w.WriteHeader(http.StatusBadRequest)

		if err = json.NewEncoder(w).Encode(inputErr.Fields()); err != nil {
			s.l.LogErrorf("Could not encode missing field err: %v", err.Error())
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}

		return
	}

	if err != nil {
		// Bad tokens in the document body, nothing server-side.
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)

		return
	}

	reservation, err := s.hManager.CreateReservation(ctx, input)
	if errors.Is(err, hotel.ErrBadDate) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not create a reservation: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Location", fmt.Sprintf("/api/reservations/v1/%d", reservation.ID))
	w.WriteHeader(http.StatusCreated)

	if err = s.reports.Write(w, reservation, input.Client); err != nil {
		s.l.LogErrorf("Could not write report response: %v", err.Error())
	}
}

func (s *Server) getReservationHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	reservation, err := s.hManager.Reservation(ctx, id)
	if errors.Is(err, hotel.ErrRecordNotFound) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not get reservation %v: %v", id, err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	client, err := s.hManager.Client(ctx, reservation.ClientID)
	if err != nil {
		// The client record is written before the reservation, so a miss
		// here is a server-side inconsistency.
		s.l.LogErrorf("Could not get client %v: %v", reservation.ClientID, err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	out := struct {
		Reservation *hotel.Reservation `json:"reservation"`
		Client      *hotel.Client      `json:"client"`
	}{
		Reservation: reservation,
		Client:      client,
	}

	w.Header().Set("Content-Type", "application/json")

	if err = json.NewEncoder(w).Encode(out); err != nil {
		s.l.LogErrorf("Could not encode reservation %v: %v", id, err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	r.Handle(
		"POST /api/reservations/v1",
		s.applyMiddlewares(http.HandlerFunc(s.createReservationHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		"GET /api/reservations/v1/{id}",
		s.applyMiddlewares(http.HandlerFunc(s.getReservationHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		fmt.Sprintf("GET %s", s.conf.LivenessEndpoint),
		s.applyMiddlewares(http.HandlerFunc(s.livenessHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
}
