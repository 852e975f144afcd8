package sim

import "fmt"

// Topic names an event stream on the Bus.
type Topic string

const (
	// TopicPurchaseRequest carries PurchaseRequest payloads from customer agents.
	TopicPurchaseRequest Topic = "purchase.request"
	// TopicPurchaseResult carries PurchaseResult payloads emitted by the orchestrator.
	TopicPurchaseResult Topic = "purchase.result"
	// TopicRestockRequest carries RestockRequest payloads from purchase fallout
	// or proactive employee checks.
	TopicRestockRequest Topic = "restock.request"
	// TopicRestockDone carries RestockDone payloads, exactly one per request.
	TopicRestockDone Topic = "restock.done"
)

// PurchaseRequest asks the orchestrator to sell one copy of Book to Customer.
type PurchaseRequest struct {
	Customer *Customer
	Book     *Book
}

// PurchaseResult reports the outcome of a PurchaseRequest.
// Status is StatusOK or StatusOutOfStock.
type PurchaseResult struct {
	Status   string
	Customer *Customer
	Book     *Book
}

// Purchase outcome statuses.
const (
	StatusOK         = "ok"
	StatusOutOfStock = "out_of_stock"
)

// RestockRequest asks the orchestrator to replenish Book.
type RestockRequest struct {
	Book *Book
}

// RestockDone reports a completed restock pass. Employee is nil when the
// roster was empty at fulfillment time. Cost may be zero when no units
// were added; the event still fires so listeners can count restock events.
type RestockDone struct {
	Book     *Book
	Employee *Employee
	Cost     float64
}

// Handler consumes a published payload. The concrete type is fixed per topic.
type Handler func(payload any)

// Bus is a synchronous topic-keyed publish/subscribe dispatcher.
//
// Delivery is in registration order, on the publisher's call stack. Handlers
// may publish from within a handler (the purchase → restock cascade relies on
// this); chains are expected to stay short (request → result/done). The Bus
// does not recover from handler panics: a panicking handler is a programming
// error and aborts the run.
//
// Not safe for concurrent use. The simulation is single-threaded and all
// publishes happen inside a tick.
type Bus struct {
	subs map[Topic][]Handler
}

// NewBus creates an empty Bus. Topics need no pre-declaration.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]Handler)}
}

// Subscribe registers h for topic, after any previously registered handlers.
func (b *Bus) Subscribe(topic Topic, h Handler) {
	b.subs[topic] = append(b.subs[topic], h)
}

// Publish validates payload against the topic's expected shape and invokes
// every subscribed handler in registration order. Publishing to a topic with
// no subscribers is a no-op (the payload is still validated). A payload of
// the wrong type or with missing required fields panics: malformed events are
// contract violations, not runtime conditions.
func (b *Bus) Publish(topic Topic, payload any) {
	validatePayload(topic, payload)
	for _, h := range b.subs[topic] {
		h(payload)
	}
}

// validatePayload rejects malformed payloads at publish time so consumers
// never see a half-formed event.
func validatePayload(topic Topic, payload any) {
	switch topic {
	case TopicPurchaseRequest:
		p, ok := payload.(PurchaseRequest)
		if !ok {
			panic(fmt.Sprintf("bus: %s payload is %T, want PurchaseRequest", topic, payload))
		}
		if p.Customer == nil || p.Book == nil {
			panic(fmt.Sprintf("bus: %s payload missing customer or book", topic))
		}
	case TopicPurchaseResult:
		p, ok := payload.(PurchaseResult)
		if !ok {
			panic(fmt.Sprintf("bus: %s payload is %T, want PurchaseResult", topic, payload))
		}
		if p.Customer == nil || p.Book == nil {
			panic(fmt.Sprintf("bus: %s payload missing customer or book", topic))
		}
		if p.Status != StatusOK && p.Status != StatusOutOfStock {
			panic(fmt.Sprintf("bus: %s payload has unknown status %q", topic, p.Status))
		}
	case TopicRestockRequest:
		p, ok := payload.(RestockRequest)
		if !ok {
			panic(fmt.Sprintf("bus: %s payload is %T, want RestockRequest", topic, payload))
		}
		if p.Book == nil {
			panic(fmt.Sprintf("bus: %s payload missing book", topic))
		}
	case TopicRestockDone:
		p, ok := payload.(RestockDone)
		if !ok {
			panic(fmt.Sprintf("bus: %s payload is %T, want RestockDone", topic, payload))
		}
		if p.Book == nil {
			panic(fmt.Sprintf("bus: %s payload missing book", topic))
		}
	}
}
