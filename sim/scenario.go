package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the inbound seed contract: the inventory, catalog and people
// a collaborator supplies before the first tick.
type Scenario struct {
	Inventory string       `yaml:"inventory"`
	Books     []BookSeed   `yaml:"books"`
	Customers []PersonSeed `yaml:"customers"`
	Employees []PersonSeed `yaml:"employees"`
}

// BookSeed describes one catalog entry.
type BookSeed struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Author   string   `yaml:"author"`
	Genres   []string `yaml:"genres"`
	Price    float64  `yaml:"price"`
	Quantity int      `yaml:"quantity"`
}

// PersonSeed describes one customer or employee.
type PersonSeed struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate rejects scenarios the engine cannot run: empty catalogs,
// duplicate or blank book IDs, negative prices or quantities.
func (sc *Scenario) Validate() error {
	if len(sc.Books) == 0 {
		return fmt.Errorf("scenario: no books")
	}
	seen := make(map[string]bool, len(sc.Books))
	for _, b := range sc.Books {
		if b.ID == "" {
			return fmt.Errorf("scenario: book %q has no id", b.Title)
		}
		if seen[b.ID] {
			return fmt.Errorf("scenario: duplicate book id %s", b.ID)
		}
		seen[b.ID] = true
		if b.Price < 0 {
			return fmt.Errorf("scenario: book %s has negative price %.2f", b.ID, b.Price)
		}
		if b.Quantity < 0 {
			return fmt.Errorf("scenario: book %s has negative quantity %d", b.ID, b.Quantity)
		}
	}
	return nil
}

// Store materializes the scenario into a fresh entity store.
func (sc *Scenario) Store() (*Store, error) {
	invID := sc.Inventory
	if invID == "" {
		invID = "MainInventory"
	}
	inv := &Inventory{ID: invID}

	books := make([]*Book, 0, len(sc.Books))
	for _, b := range sc.Books {
		books = append(books, &Book{
			ID:       b.ID,
			Title:    b.Title,
			Author:   b.Author,
			Genres:   b.Genres,
			Price:    b.Price,
			Quantity: b.Quantity,
		})
	}
	customers := make([]*Customer, 0, len(sc.Customers))
	for _, p := range sc.Customers {
		customers = append(customers, &Customer{ID: p.ID, Name: p.Name})
	}
	employees := make([]*Employee, 0, len(sc.Employees))
	for _, p := range sc.Employees {
		employees = append(employees, &Employee{ID: p.ID, Name: p.Name})
		inv.Employees = append(inv.Employees, p.ID)
	}
	return NewStore(inv, books, customers, employees)
}

// DefaultScenario returns the built-in catalog: six Sinhala-literature
// titles, four customers and two employees. Quantities are fixed so a
// default run is reproducible from the seed alone.
func DefaultScenario() *Scenario {
	return &Scenario{
		Inventory: "MainInventory",
		Books: []BookSeed{
			{ID: "Book_0", Title: "Madol Doova", Author: "Martin Wickramasinghe", Genres: []string{"Fiction"}, Price: 1250.00, Quantity: 4},
			{ID: "Book_1", Title: "Gamperaliya", Author: "Martin Wickramasinghe", Genres: []string{"Fiction"}, Price: 2400.00, Quantity: 2},
			{ID: "Book_2", Title: "Viragaya", Author: "Martin Wickramasinghe", Genres: []string{"Fiction"}, Price: 1850.00, Quantity: 5},
			{ID: "Book_3", Title: "Golu Hadawatha", Author: "Karunasena Jayalath", Genres: []string{"Romance", "Fiction"}, Price: 1650.00, Quantity: 3},
			{ID: "Book_4", Title: "Malagiya Aththo", Author: "Ediriweera Sarachchandra", Genres: []string{"Fiction"}, Price: 2200.00, Quantity: 6},
			{ID: "Book_5", Title: "Samsaranye Urumaya", Author: "Simon Nawagattegama", Genres: []string{"Fiction"}, Price: 1450.00, Quantity: 1},
		},
		Customers: []PersonSeed{
			{ID: "Kasun_Silva", Name: "Kasun Silva"},
			{ID: "Nimal_Perera", Name: "Nimal Perera"},
			{ID: "Saman_Fernando", Name: "Saman Fernando"},
			{ID: "Ruwan_Jayasinghe", Name: "Ruwan Jayasinghe"},
		},
		Employees: []PersonSeed{
			{ID: "Emp_0", Name: "Emp 0"},
			{ID: "Emp_1", Name: "Emp 1"},
		},
	}
}
