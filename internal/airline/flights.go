package airline

import (
	"errors"
	"sort"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrFlightExists   = errors.New("flight already exists")
	ErrFlightNotFound = errors.New("flight not found")
)

// Flight represents a flight and its seat inventory.
type Flight struct {
	Number         string
	Destination    string
	TotalSeats     int
	AvailableSeats int
	Price          float64
}

// FlightStore holds flights keyed by flight number. State lives only for
// the duration of the process.
type FlightStore struct {
	flights map[string]*Flight
}

func NewFlightStore() *FlightStore {
	return &FlightStore{
		flights: make(map[string]*Flight),
	}
}

// Add inserts a new flight with all seats available. A duplicate flight
// number is rejected and the existing record is left untouched.
func (s *FlightStore) Add(number, destination string, seats int, price float64) (*Flight, error) {
	if _, exists := s.flights[number]; exists {
		return nil, ErrFlightExists
	}

	flight := &Flight{
		Number:         number,
		Destination:    destination,
		TotalSeats:     seats,
		AvailableSeats: seats,
		Price:          price,
	}
	s.flights[number] = flight
	return flight, nil
}

// UpdatePrice overwrites the ticket price of an existing flight.
func (s *FlightStore) UpdatePrice(number string, price float64) (*Flight, error) {
	flight, exists := s.flights[number]
	if !exists {
		return nil, ErrFlightNotFound
	}
	flight.Price = price
	return flight, nil
}

// Get returns the flight with the given number.
func (s *FlightStore) Get(number string) (*Flight, error) {
	flight, exists := s.flights[number]
	if !exists {
		return nil, ErrFlightNotFound
	}
	return flight, nil
}

// All returns every flight ordered by flight number.
func (s *FlightStore) All() []*Flight {
	flights := lo.Values(s.flights)
	sort.Slice(flights, func(i, j int) bool {
		return flights[i].Number < flights[j].Number
	})
	return flights
}

// Search returns flights whose destination matches, case-insensitively.
func (s *FlightStore) Search(destination string) []*Flight {
	return lo.Filter(s.All(), func(f *Flight, _ int) bool {
		return strings.EqualFold(f.Destination, destination)
	})
}
