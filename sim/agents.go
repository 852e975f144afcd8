package sim

import "github.com/sirupsen/logrus"

// Agent is anything the orchestrator drives once per tick. Agents hold a
// reference to the entity they play, never ownership: all state mutation
// goes through bus requests.
type Agent interface {
	// Step runs the agent's per-tick behavior against the simulation.
	Step(s *Simulator)
}

// customerProfile is a shopping temperament drawn once at agent creation.
type customerProfile struct {
	Kind    string
	ActProb float64 // chance per tick the customer considers buying
}

var customerProfiles = []customerProfile{
	{Kind: "frequent", ActProb: 0.7},
	{Kind: "regular", ActProb: 0.4},
	{Kind: "occasional", ActProb: 0.2},
	{Kind: "browser", ActProb: 0.1},
}

var customerProfileWeights = []float64{0.2, 0.4, 0.3, 0.1}

// CustomerAgent publishes purchase requests for its customer.
type CustomerAgent struct {
	Customer *Customer
	Profile  customerProfile
}

// NewCustomerAgent draws a behavior profile from the shared RNG and wraps c.
func NewCustomerAgent(s *Simulator, c *Customer) *CustomerAgent {
	profile := customerProfiles[weightedIndex(s.RNG, customerProfileWeights)]
	logrus.Debugf("customer %s joins as %s shopper", c.ID, profile.Kind)
	return &CustomerAgent{Customer: c, Profile: profile}
}

// Step rolls the profile's act probability; on success, with the configured
// pick probability, requests a uniformly random catalog book. The browse
// draw happens even when no purchase follows, keeping the RNG stream stable.
func (a *CustomerAgent) Step(s *Simulator) {
	if s.RNG.Float64() >= a.Profile.ActProb {
		return
	}
	if s.RNG.Float64() >= s.Config.Behavior.CustomerPickProbability {
		return // browsed, walked out
	}
	books := s.Store.Books
	if len(books) == 0 {
		return
	}
	book := books[s.RNG.Intn(len(books))]
	s.Bus.Publish(TopicPurchaseRequest, PurchaseRequest{Customer: a.Customer, Book: book})
}

// workProfile is an employee work ethic drawn once at agent creation.
//
// The original model also carried a per-profile efficiency multiplier, used
// only by a direct-restock path that central arbitration replaced; it is not
// carried here.
type workProfile struct {
	Kind          string
	ProactiveProb float64 // chance per tick the employee checks stock levels
}

var workProfiles = []workProfile{
	{Kind: "diligent", ProactiveProb: 0.6},
	{Kind: "regular", ProactiveProb: 0.3},
	{Kind: "lazy", ProactiveProb: 0.1},
}

var workProfileWeights = []float64{0.3, 0.5, 0.2}

// EmployeeAgent proactively requests restocks for low-stock books.
type EmployeeAgent struct {
	Employee *Employee
	Profile  workProfile
}

// NewEmployeeAgent draws a work profile from the shared RNG and wraps e.
func NewEmployeeAgent(s *Simulator, e *Employee) *EmployeeAgent {
	profile := workProfiles[weightedIndex(s.RNG, workProfileWeights)]
	logrus.Debugf("employee %s joins as %s worker", e.ID, profile.Kind)
	return &EmployeeAgent{Employee: e, Profile: profile}
}

// Step rolls the proactive probability; on success, scans for books under
// the restock threshold, picks one at random and, past the configured work
// gate, publishes a restock request. Fulfillment stays with the
// orchestrator, so a request here never double-restocks.
func (a *EmployeeAgent) Step(s *Simulator) {
	if s.RNG.Float64() >= a.Profile.ProactiveProb {
		return
	}
	var low []*Book
	for _, b := range s.Store.Books {
		if b.Quantity < s.Config.Stock.RestockThreshold {
			low = append(low, b)
		}
	}
	if len(low) == 0 {
		return
	}
	book := low[s.RNG.Intn(len(low))]
	if s.RNG.Float64() >= s.Config.Behavior.EmployeeWorkProbability {
		return
	}
	s.Bus.Publish(TopicRestockRequest, RestockRequest{Book: book})
}
