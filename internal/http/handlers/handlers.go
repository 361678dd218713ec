// Package handlers wires HTTP requests to the state stores and services.
package handlers

import (
	"math/rand"

	"github.com/stripe/stripe-go/v82"

	"skyroute/internal/config"
	"skyroute/internal/seatmap"
	"skyroute/internal/store"
)

// Handlers carries the injected application state; no ambient globals.
type Handlers struct {
	Env      config.Env
	Auth     *store.AuthStore
	Bookings *store.BookingStore
	Seats    *seatmap.Generator

	// Test hooks. Nil means production behavior.
	CreateIntent func(*stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	DocsRand     *rand.Rand
}

func New(env config.Env, auth *store.AuthStore, bookings *store.BookingStore, seats *seatmap.Generator) *Handlers {
	return &Handlers{
		Env:      env,
		Auth:     auth,
		Bookings: bookings,
		Seats:    seats,
	}
}
