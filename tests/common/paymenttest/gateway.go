//go:build unit || e2e

// Package paymenttest provides an in-memory payment gateway for tests so
// nothing ever calls the real processor.
package paymenttest

import (
	"context"
	"fmt"
	"sync"

	"hotel-booking-api/internal/usecase/commands"

	"github.com/cockroachdb/errors"
)

// Gateway implements commands.PaymentGateway in memory. It hands out
// sequential intent ids and remembers every intent it created so retrieval
// behaves like the processor. Safe for concurrent use.
type Gateway struct {
	mu      sync.Mutex
	intents map[string]commands.PaymentIntent
	seq     int

	createCalls   int
	retrieveCalls int

	// FailCreate / FailRetrieve, when set, are returned verbatim by the
	// corresponding call.
	FailCreate   error
	FailRetrieve error

	// BeforeCreate runs before an intent is created, outside the lock.
	// Tests use it as a barrier to force concurrent callers into the
	// create path together.
	BeforeCreate func()
}

func NewGateway() *Gateway {
	return &Gateway{intents: make(map[string]commands.PaymentIntent)}
}

func (g *Gateway) CreateIntent(_ context.Context, amountCents int64, _ string) (*commands.PaymentIntent, error) {
	if g.BeforeCreate != nil {
		g.BeforeCreate()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.createCalls++
	if g.FailCreate != nil {
		return nil, g.FailCreate
	}

	g.seq++
	id := fmt.Sprintf("pi_test_%06d", g.seq)
	intent := commands.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret",
		AmountCents:  amountCents,
		Currency:     "eur",
	}
	g.intents[id] = intent

	return &intent, nil
}

func (g *Gateway) RetrieveIntent(_ context.Context, id string) (*commands.PaymentIntent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.retrieveCalls++
	if g.FailRetrieve != nil {
		return nil, g.FailRetrieve
	}

	intent, ok := g.intents[id]
	if !ok {
		return nil, errors.Newf("no such intent: %s", id)
	}

	return &intent, nil
}

func (g *Gateway) CreateCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.createCalls
}

func (g *Gateway) RetrieveCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.retrieveCalls
}
