// Package memory owns the Client and Reservation records by id. Clients
// only carry reservation ids; the values live here.
package memory

import (
	"context"
	"sync"

	"github.com/avilahotel/reservas/internal/hotel"
	"github.com/avilahotel/reservas/internal/logger"
)

type Config struct {
	L *logger.Logger
}

type DB struct {
	mu           sync.Mutex
	l            *logger.Logger
	clients      map[int]*hotel.Client
	reservations map[int]*hotel.Reservation
}

func New(conf Config) *DB {
	//nolint:exhaustruct
	return &DB{
		l:            conf.L,
		clients:      make(map[int]*hotel.Client),
		reservations: make(map[int]*hotel.Reservation),
	}
}

func (db *DB) SaveClient(_ context.Context, client *hotel.Client) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.clients[client.ID] = client

	return nil
}

func (db *DB) SaveReservation(_ context.Context, reservation *hotel.Reservation) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.reservations[reservation.ID] = reservation

	return nil
}

func (db *DB) GetClient(_ context.Context, id int) (*hotel.Client, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	client, exists := db.clients[id]
	if !exists {
		return nil, hotel.ErrRecordNotFound
	}

	return client, nil
}

func (db *DB) GetReservation(_ context.Context, id int) (*hotel.Reservation, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	reservation, exists := db.reservations[id]
	if !exists {
		return nil, hotel.ErrRecordNotFound
	}

	return reservation, nil
}
