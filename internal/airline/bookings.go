package airline

import (
	"errors"
	"sort"

	"github.com/samber/lo"
)

var (
	ErrNoSeats         = errors.New("no seats available on this flight")
	ErrBookingNotFound = errors.New("invalid ticket ID")
)

// Booking represents a ticket held by a passenger on a flight.
type Booking struct {
	TicketID      int
	PassengerName string
	FlightNumber  string
}

// BookingStore holds bookings keyed by ticket id. Seat accounting happens
// against the FlightStore passed into each call that needs it.
type BookingStore struct {
	bookings map[int]*Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make(map[int]*Booking),
	}
}

// Book reserves one seat on the flight and returns the new booking.
// Ticket ids are assigned as the live booking count plus one, so an id
// freed by a cancellation can be handed out again.
func (s *BookingStore) Book(passengerName, flightNumber string, flights *FlightStore) (*Booking, error) {
	flight, err := flights.Get(flightNumber)
	if err != nil {
		return nil, err
	}
	if flight.AvailableSeats <= 0 {
		return nil, ErrNoSeats
	}

	booking := &Booking{
		TicketID:      len(s.bookings) + 1,
		PassengerName: passengerName,
		FlightNumber:  flightNumber,
	}
	s.bookings[booking.TicketID] = booking
	flight.AvailableSeats--
	return booking, nil
}

// Cancel removes a booking and returns its seat to the flight.
func (s *BookingStore) Cancel(ticketID int, flights *FlightStore) error {
	booking, exists := s.bookings[ticketID]
	if !exists {
		return ErrBookingNotFound
	}

	if flight, err := flights.Get(booking.FlightNumber); err == nil {
		flight.AvailableSeats++
	}
	delete(s.bookings, ticketID)
	return nil
}

// Get returns the booking with the given ticket id.
func (s *BookingStore) Get(ticketID int) (*Booking, error) {
	booking, exists := s.bookings[ticketID]
	if !exists {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// All returns every booking ordered by ticket id.
func (s *BookingStore) All() []*Booking {
	bookings := lo.Values(s.bookings)
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].TicketID < bookings[j].TicketID
	})
	return bookings
}

// System composes the flight and booking stores behind one menu.
type System struct {
	Flights  *FlightStore
	Bookings *BookingStore
}

// NewSystem returns an empty airline system.
func NewSystem() *System {
	return &System{
		Flights:  NewFlightStore(),
		Bookings: NewBookingStore(),
	}
}

// BookingView is a booking joined with its flight for display.
type BookingView struct {
	Booking *Booking
	Flight  *Flight
}

// View returns the booking with the given ticket id joined with its flight.
func (sys *System) View(ticketID int) (*BookingView, error) {
	booking, err := sys.Bookings.Get(ticketID)
	if err != nil {
		return nil, err
	}
	flight, err := sys.Flights.Get(booking.FlightNumber)
	if err != nil {
		return nil, err
	}
	return &BookingView{Booking: booking, Flight: flight}, nil
}

// Report summarizes all flights and all bookings.
type Report struct {
	Flights  []*Flight
	Bookings []*Booking
}

// Report returns a snapshot of every flight and booking.
func (sys *System) Report() *Report {
	return &Report{
		Flights:  sys.Flights.All(),
		Bookings: sys.Bookings.All(),
	}
}
