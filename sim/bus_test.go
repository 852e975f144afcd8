package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_DeliversInRegistrationOrder(t *testing.T) {
	// GIVEN three handlers registered on the same topic
	bus := NewBus()
	book := &Book{ID: "b", Title: "b"}
	var order []int
	bus.Subscribe(TopicRestockRequest, func(any) { order = append(order, 1) })
	bus.Subscribe(TopicRestockRequest, func(any) { order = append(order, 2) })
	bus.Subscribe(TopicRestockRequest, func(any) { order = append(order, 3) })

	// WHEN an event is published
	bus.Publish(TopicRestockRequest, RestockRequest{Book: book})

	// THEN every handler ran once, in registration order
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestBus_SamePayloadToEveryHandler(t *testing.T) {
	// GIVEN two handlers on restock.request
	bus := NewBus()
	book := &Book{ID: "b"}
	var got []*Book
	h := func(payload any) { got = append(got, payload.(RestockRequest).Book) }
	bus.Subscribe(TopicRestockRequest, h)
	bus.Subscribe(TopicRestockRequest, h)

	// WHEN one event is published
	bus.Publish(TopicRestockRequest, RestockRequest{Book: book})

	// THEN both handlers saw the same book pointer
	assert.Len(t, got, 2)
	assert.Same(t, book, got[0])
	assert.Same(t, book, got[1])
}

func TestBus_NoSubscribers_NoOp(t *testing.T) {
	// GIVEN an empty bus
	bus := NewBus()

	// WHEN publishing to a topic nobody subscribed to
	// THEN nothing happens (and nothing panics)
	bus.Publish(TopicRestockRequest, RestockRequest{Book: &Book{ID: "b"}})
}

func TestBus_ReentrantPublish(t *testing.T) {
	// GIVEN a handler that publishes a follow-up event from within itself,
	// like the purchase → restock cascade does
	bus := NewBus()
	book := &Book{ID: "b"}
	emp := &Employee{ID: "e"}
	var doneSeen int
	bus.Subscribe(TopicRestockRequest, func(any) {
		bus.Publish(TopicRestockDone, RestockDone{Book: book, Employee: emp})
	})
	bus.Subscribe(TopicRestockDone, func(any) { doneSeen++ })

	// WHEN the outer event is published
	bus.Publish(TopicRestockRequest, RestockRequest{Book: book})

	// THEN the nested publish was delivered synchronously
	assert.Equal(t, 1, doneSeen)
}

func TestBus_MalformedPayloads_Panic(t *testing.T) {
	bus := NewBus()
	book := &Book{ID: "b"}
	cust := &Customer{ID: "c"}

	tests := []struct {
		name    string
		topic   Topic
		payload any
	}{
		{"wrong type", TopicPurchaseRequest, RestockRequest{Book: book}},
		{"nil customer", TopicPurchaseRequest, PurchaseRequest{Book: book}},
		{"nil book", TopicPurchaseRequest, PurchaseRequest{Customer: cust}},
		{"nil book on restock", TopicRestockRequest, RestockRequest{}},
		{"unknown status", TopicPurchaseResult, PurchaseResult{Status: "maybe", Customer: cust, Book: book}},
		{"nil book on done", TopicRestockDone, RestockDone{Employee: &Employee{ID: "e"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Malformed payloads are contract violations and must fail loudly.
			assert.Panics(t, func() { bus.Publish(tt.topic, tt.payload) })
		})
	}
}

func TestBus_RestockDone_NilEmployeeAllowed(t *testing.T) {
	// GIVEN restock.done with no fulfilling employee (empty roster)
	bus := NewBus()

	// WHEN published
	// THEN it is valid: attribution is "none", not an error
	assert.NotPanics(t, func() {
		bus.Publish(TopicRestockDone, RestockDone{Book: &Book{ID: "b"}})
	})
}
