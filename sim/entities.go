package sim

import "fmt"

// Book is a catalog item. Price is fixed at creation; Quantity is mutated
// only by the orchestrator's purchase and restock handlers and never drops
// below zero.
type Book struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Genres   []string `json:"genres"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
}

// Customer is a shopper. Purchases is append-only and records every book
// bought across the run, duplicates included.
type Customer struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Purchases []*Book `json:"-"`
}

// Employee is a staff member eligible for round-robin restock credit.
type Employee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Inventory is the singleton store record holding employee assignments.
type Inventory struct {
	ID        string   `json:"id"`
	Employees []string `json:"employees"`
}

// Transaction records one successful purchase. Never mutated after creation.
// ID derives from the customer, the book and the run-level counter so that
// two sales of the same book to the same customer still get distinct IDs.
type Transaction struct {
	ID       string    `json:"id"`
	Customer *Customer `json:"-"`
	Book     *Book     `json:"-"`
	Step     int64     `json:"step"`
}

// TransactionID builds the derived transaction identifier.
func TransactionID(customerID, bookID string, counter int64) string {
	return fmt.Sprintf("T_%s_%s_%d", customerID, bookID, counter)
}

// Store holds all entity records for a run. The Simulator owns the Store
// exclusively; agents reach it read-only and request mutation over the bus.
type Store struct {
	Inventory    *Inventory
	Books        []*Book
	Customers    []*Customer
	Employees    []*Employee
	Transactions []*Transaction

	booksByID map[string]*Book
}

// NewStore builds a Store from seed entities. Book IDs must be unique.
func NewStore(inv *Inventory, books []*Book, customers []*Customer, employees []*Employee) (*Store, error) {
	byID := make(map[string]*Book, len(books))
	for _, b := range books {
		if b.Quantity < 0 {
			return nil, fmt.Errorf("store: book %s seeded with negative quantity %d", b.ID, b.Quantity)
		}
		if b.Price < 0 {
			return nil, fmt.Errorf("store: book %s seeded with negative price %.2f", b.ID, b.Price)
		}
		if _, dup := byID[b.ID]; dup {
			return nil, fmt.Errorf("store: duplicate book id %s", b.ID)
		}
		byID[b.ID] = b
	}
	return &Store{
		Inventory: inv,
		Books:     books,
		Customers: customers,
		Employees: employees,
		booksByID: byID,
	}, nil
}

// Book returns the book with the given ID, or nil.
func (s *Store) Book(id string) *Book {
	return s.booksByID[id]
}

// AppendTransaction records a completed purchase.
func (s *Store) AppendTransaction(t *Transaction) {
	s.Transactions = append(s.Transactions, t)
}

// AddCustomer registers a customer record.
func (s *Store) AddCustomer(c *Customer) {
	s.Customers = append(s.Customers, c)
}

// AddEmployee registers an employee record and assigns it to the inventory.
func (s *Store) AddEmployee(e *Employee) {
	s.Employees = append(s.Employees, e)
	if s.Inventory != nil {
		s.Inventory.Employees = append(s.Inventory.Employees, e.ID)
	}
}

// RemoveCustomer drops a customer record. In-flight events holding the
// pointer still complete against it.
func (s *Store) RemoveCustomer(c *Customer) {
	for i, got := range s.Customers {
		if got == c {
			s.Customers = append(s.Customers[:i], s.Customers[i+1:]...)
			return
		}
	}
}

// RemoveEmployee drops an employee record and its inventory assignment.
func (s *Store) RemoveEmployee(e *Employee) {
	for i, got := range s.Employees {
		if got == e {
			s.Employees = append(s.Employees[:i], s.Employees[i+1:]...)
			break
		}
	}
	if s.Inventory == nil {
		return
	}
	for i, id := range s.Inventory.Employees {
		if id == e.ID {
			s.Inventory.Employees = append(s.Inventory.Employees[:i], s.Inventory.Employees[i+1:]...)
			return
		}
	}
}
