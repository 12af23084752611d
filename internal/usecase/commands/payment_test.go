//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/order"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/tests/common/paymenttest"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memPaymentStore mimics the database table: one row per order, a second
// insert for the same order fails with a duplicate-key error.
type memPaymentStore struct {
	mu      sync.Mutex
	intents map[uuid.UUID]string

	failFind   error
	failInsert error
	onMiss     func() // runs when a lookup finds no mapping
}

func newMemPaymentStore() *memPaymentStore {
	return &memPaymentStore{intents: make(map[uuid.UUID]string)}
}

func (s *memPaymentStore) FindIntentID(_ context.Context, orderID uuid.UUID) (string, error) {
	if s.failFind != nil {
		return "", s.failFind
	}

	s.mu.Lock()
	intentID, ok := s.intents[orderID]
	s.mu.Unlock()

	if !ok {
		if s.onMiss != nil {
			s.onMiss()
		}
		return "", infra.WrapRepoErr("payment intent not found", nil, infra.KindNotFound)
	}
	return intentID, nil
}

func (s *memPaymentStore) InsertIntentID(_ context.Context, orderID uuid.UUID, intentID string) error {
	if s.failInsert != nil {
		return s.failInsert
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.intents[orderID]; ok {
		return infra.WrapRepoErr("duplicate payment mapping", nil, infra.KindDuplicateKey)
	}
	s.intents[orderID] = intentID
	return nil
}

func (s *memPaymentStore) stored(orderID uuid.UUID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	intentID, ok := s.intents[orderID]
	return intentID, ok
}

func (s *memPaymentStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.intents)
}

type fakeOrderReads struct {
	items map[uuid.UUID][]order.PricedStay
	email map[uuid.UUID]string
}

func newFakeOrderReads() *fakeOrderReads {
	return &fakeOrderReads{
		items: make(map[uuid.UUID][]order.PricedStay),
		email: make(map[uuid.UUID]string),
	}
}

func (r *fakeOrderReads) PricedItems(_ context.Context, orderID uuid.UUID) ([]order.PricedStay, error) {
	return r.items[orderID], nil
}

func (r *fakeOrderReads) CustomerEmail(_ context.Context, orderID uuid.UUID) (string, error) {
	email, ok := r.email[orderID]
	if !ok {
		return "", infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return email, nil
}

func (r *fakeOrderReads) addOrder(orderID uuid.UUID, email string, items ...order.PricedStay) {
	r.items[orderID] = items
	r.email[orderID] = email
}

func stay(start, end string, rate int64) order.PricedStay {
	parse := func(s string) time.Time {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			panic(err)
		}
		return t
	}
	return order.PricedStay{StartDate: parse(start), EndDate: parse(end), NightlyRateCents: rate}
}

func TestEnsurePaymentIntent_FirstCallCreates(t *testing.T) {
	store := newMemPaymentStore()
	reads := newFakeOrderReads()
	gateway := paymenttest.NewGateway()
	svc := commands.NewPaymentCommands(store, reads, gateway)

	orderID := uuid.New()
	reads.addOrder(orderID, "guest@example.com",
		stay("2024-03-01", "2024-03-03", 5000))

	intent, err := svc.EnsurePaymentIntent(context.Background(), orderID)

	require.NoError(t, err)
	assert.Equal(t, int64(10000), intent.AmountCents)
	assert.NotEmpty(t, intent.ClientSecret)
	assert.Equal(t, 1, gateway.CreateCalls())

	storedID, ok := store.stored(orderID)
	require.True(t, ok)
	assert.Equal(t, intent.ID, storedID)
}

func TestEnsurePaymentIntent_SecondCallRetrieves(t *testing.T) {
	store := newMemPaymentStore()
	reads := newFakeOrderReads()
	gateway := paymenttest.NewGateway()
	svc := commands.NewPaymentCommands(store, reads, gateway)

	orderID := uuid.New()
	reads.addOrder(orderID, "guest@example.com",
		stay("2024-03-01", "2024-03-03", 5000))

	first, err := svc.EnsurePaymentIntent(context.Background(), orderID)
	require.NoError(t, err)

	second, err := svc.EnsurePaymentIntent(context.Background(), orderID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ClientSecret, second.ClientSecret)
	assert.Equal(t, 1, gateway.CreateCalls(), "second call must not create another intent")
	assert.Equal(t, 1, gateway.RetrieveCalls())
}

func TestEnsurePaymentIntent_UnknownOrder(t *testing.T) {
	store := newMemPaymentStore()
	reads := newFakeOrderReads()
	gateway := paymenttest.NewGateway()
	svc := commands.NewPaymentCommands(store, reads, gateway)

	_, err := svc.EnsurePaymentIntent(context.Background(), uuid.New())

	require.ErrorIs(t, err, commands.ErrOrderNotFound)
	assert.Zero(t, gateway.CreateCalls())
	assert.Zero(t, store.size())
}

func TestEnsurePaymentIntent_MissingCustomer(t *testing.T) {
	store := newMemPaymentStore()
	reads := newFakeOrderReads()
	gateway := paymenttest.NewGateway()
	svc := commands.NewPaymentCommands(store, reads, gateway)

	orderID := uuid.New()
	reads.items[orderID] = []order.PricedStay{stay("2024-03-01", "2024-03-03", 5000)}

	_, err := svc.EnsurePaymentIntent(context.Background(), orderID)

	require.ErrorIs(t, err, commands.ErrOrderNotFound)
	assert.Zero(t, gateway.CreateCalls())
}

func TestEnsurePaymentIntent_GatewayFailureLeavesNothingBehind(t *testing.T) {
	store := newMemPaymentStore()
	reads := newFakeOrderReads()
	gateway := paymenttest.NewGateway()
	gateway.FailCreate = errors.New("processor unreachable")
	svc := commands.NewPaymentCommands(store, reads, gateway)

	orderID := uuid.New()
	reads.addOrder(orderID, "guest@example.com",
		stay("2024-03-01", "2024-03-03", 5000))

	_, err := svc.EnsurePaymentIntent(context.Background(), orderID)

	require.ErrorIs(t, err, commands.ErrPaymentGateway)
	assert.Zero(t, store.size(), "no mapping may be recorded without an intent")
}

func TestEnsurePaymentIntent_StoreLookupFailure(t *testing.T) {
	store := newMemPaymentStore()
	store.failFind = infra.WrapRepoErr("connection reset", errors.New("broken pipe"))
	reads := newFakeOrderReads()
	gateway := paymenttest.NewGateway()
	svc := commands.NewPaymentCommands(store, reads, gateway)

	_, err := svc.EnsurePaymentIntent(context.Background(), uuid.New())

	require.ErrorIs(t, err, commands.ErrPaymentPersistence)
	assert.Zero(t, gateway.CreateCalls())
}

func TestEnsurePaymentIntent_BlankStoredIntentID(t *testing.T) {
	store := newMemPaymentStore()
	reads := newFakeOrderReads()
	gateway := paymenttest.NewGateway()
	svc := commands.NewPaymentCommands(store, reads, gateway)

	orderID := uuid.New()
	store.intents[orderID] = ""

	_, err := svc.EnsurePaymentIntent(context.Background(), orderID)

	require.ErrorIs(t, err, commands.ErrPaymentState)
}

// Two callers race into the create path; the store arbitrates. Both block
// on the barrier after missing the lookup, so both reach the gateway, but
// only one mapping survives and both callers end up with it.
func TestEnsurePaymentIntent_ConcurrentCreateRace(t *testing.T) {
	store := newMemPaymentStore()
	reads := newFakeOrderReads()
	gateway := paymenttest.NewGateway()
	svc := commands.NewPaymentCommands(store, reads, gateway)

	orderID := uuid.New()
	reads.addOrder(orderID, "guest@example.com",
		stay("2024-03-01", "2024-03-03", 5000))

	var barrier sync.WaitGroup
	barrier.Add(2)
	store.onMiss = func() {
		barrier.Done()
		barrier.Wait()
	}

	results := make(chan *commands.PaymentIntent, 2)
	errc := make(chan error, 2)
	for range 2 {
		go func() {
			intent, err := svc.EnsurePaymentIntent(context.Background(), orderID)
			results <- intent
			errc <- err
		}()
	}

	a, b := <-results, <-results
	require.NoError(t, <-errc)
	require.NoError(t, <-errc)

	assert.Equal(t, 2, gateway.CreateCalls(), "both racers reach the gateway")
	assert.Equal(t, 1, store.size(), "exactly one mapping survives")

	storedID, _ := store.stored(orderID)
	assert.Equal(t, storedID, a.ID)
	assert.Equal(t, storedID, b.ID)
}

func TestEnsurePaymentIntent_ManyConcurrentCallers(t *testing.T) {
	store := newMemPaymentStore()
	reads := newFakeOrderReads()
	gateway := paymenttest.NewGateway()
	svc := commands.NewPaymentCommands(store, reads, gateway)

	orderID := uuid.New()
	reads.addOrder(orderID, "guest@example.com",
		stay("2024-03-01", "2024-03-05", 2500),
		stay("2024-03-01", "2024-03-02", 10000))

	const callers = 16
	results := make(chan *commands.PaymentIntent, callers)
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			intent, err := svc.EnsurePaymentIntent(context.Background(), orderID)
			require.NoError(t, err)
			results <- intent
		}()
	}
	wg.Wait()
	close(results)

	require.Equal(t, 1, store.size())
	storedID, _ := store.stored(orderID)
	for intent := range results {
		assert.Equal(t, storedID, intent.ID)
		assert.Equal(t, int64(20000), intent.AmountCents)
	}
}
