package airline

import (
	"fmt"

	"go.uber.org/zap"

	"recordkeep/internal/menu"
)

// App wires the airline system to the interactive menu.
type App struct {
	system *System
	logger *zap.Logger
}

func NewApp(system *System, logger *zap.Logger) *App {
	return &App{
		system: system,
		logger: logger,
	}
}

// Menu returns the top-level airline menu.
func (a *App) Menu(p *menu.Prompter) *menu.Menu {
	return &menu.Menu{
		Title:    "Airline Management System Menu",
		ExitKey:  "9",
		Farewell: "Exiting the system. Thank you!",
		Options: []menu.Option{
			{Key: "1", Label: "Add Flight", Run: func() error { return a.addFlight(p) }},
			{Key: "2", Label: "Update Flight Price", Run: func() error { return a.updatePrice(p) }},
			{Key: "3", Label: "View Flights", Run: func() error { return a.viewFlights(p) }},
			{Key: "4", Label: "Search Flights by Destination", Run: func() error { return a.searchFlights(p) }},
			{Key: "5", Label: "Book Ticket", Run: func() error { return a.bookTicket(p) }},
			{Key: "6", Label: "Cancel Booking", Run: func() error { return a.cancelBooking(p) }},
			{Key: "7", Label: "View Booking", Run: func() error { return a.viewBooking(p) }},
			{Key: "8", Label: "Generate Report", Run: func() error { return a.generateReport(p) }},
		},
	}
}

func (a *App) addFlight(p *menu.Prompter) error {
	number, err := p.ReadString("Enter flight number")
	if err != nil {
		return err
	}
	destination, err := p.ReadString("Enter destination")
	if err != nil {
		return err
	}
	seats, err := p.ReadInt("Enter number of seats")
	if err != nil {
		return err
	}
	price, err := p.ReadFloat("Enter ticket price")
	if err != nil {
		return err
	}

	flight, err := a.system.Flights.Add(number, destination, seats, price)
	if err != nil {
		return err
	}

	a.logger.Info("flight added",
		zap.String("flight", flight.Number),
		zap.String("destination", flight.Destination),
		zap.Int("seats", flight.TotalSeats),
		zap.Float64("price", flight.Price))
	fmt.Fprintln(p.Out(), menu.OK(fmt.Sprintf(
		"Flight %s to %s added successfully with a ticket price of $%.2f!",
		flight.Number, flight.Destination, flight.Price)))
	return nil
}

func (a *App) updatePrice(p *menu.Prompter) error {
	number, err := p.ReadString("Enter flight number")
	if err != nil {
		return err
	}
	price, err := p.ReadFloat("Enter new ticket price")
	if err != nil {
		return err
	}

	flight, err := a.system.Flights.UpdatePrice(number, price)
	if err != nil {
		return err
	}

	a.logger.Info("flight price updated",
		zap.String("flight", flight.Number),
		zap.Float64("price", flight.Price))
	fmt.Fprintln(p.Out(), menu.OK(fmt.Sprintf(
		"Flight %s price updated to $%.2f successfully!", flight.Number, flight.Price)))
	return nil
}

func (a *App) viewFlights(p *menu.Prompter) error {
	out := p.Out()
	fmt.Fprintln(out, "\nAvailable Flights:")
	flights := a.system.Flights.All()
	if len(flights) == 0 {
		fmt.Fprintln(out, "No flights available.")
		return nil
	}
	for _, f := range flights {
		fmt.Fprintf(out, "Flight No: %s, Destination: %s, Seats: %d/%d, Price: $%.2f\n",
			f.Number, f.Destination, f.AvailableSeats, f.TotalSeats, f.Price)
	}
	return nil
}

func (a *App) searchFlights(p *menu.Prompter) error {
	destination, err := p.ReadString("Enter destination to search")
	if err != nil {
		return err
	}

	out := p.Out()
	fmt.Fprintf(out, "\nFlights to %s:\n", destination)
	flights := a.system.Flights.Search(destination)
	if len(flights) == 0 {
		fmt.Fprintln(out, "No flights found to this destination.")
		return nil
	}
	for _, f := range flights {
		fmt.Fprintf(out, "Flight No: %s, Seats: %d/%d, Price: $%.2f\n",
			f.Number, f.AvailableSeats, f.TotalSeats, f.Price)
	}
	return nil
}

func (a *App) bookTicket(p *menu.Prompter) error {
	passenger, err := p.ReadString("Enter passenger name")
	if err != nil {
		return err
	}
	number, err := p.ReadString("Enter flight number")
	if err != nil {
		return err
	}

	booking, err := a.system.Bookings.Book(passenger, number, a.system.Flights)
	if err != nil {
		return err
	}

	flight, _ := a.system.Flights.Get(number)
	a.logger.Info("ticket booked",
		zap.Int("ticket_id", booking.TicketID),
		zap.String("passenger", booking.PassengerName),
		zap.String("flight", booking.FlightNumber))
	fmt.Fprintln(p.Out(), menu.OK(fmt.Sprintf(
		"Ticket booked successfully! Ticket ID: %d, Price: $%.2f",
		booking.TicketID, flight.Price)))
	return nil
}

func (a *App) cancelBooking(p *menu.Prompter) error {
	ticketID, err := p.ReadInt("Enter ticket ID to cancel")
	if err != nil {
		return err
	}

	if err := a.system.Bookings.Cancel(ticketID, a.system.Flights); err != nil {
		return err
	}

	a.logger.Info("booking cancelled", zap.Int("ticket_id", ticketID))
	fmt.Fprintln(p.Out(), menu.OK("Booking canceled successfully!"))
	return nil
}

func (a *App) viewBooking(p *menu.Prompter) error {
	ticketID, err := p.ReadInt("Enter ticket ID to view")
	if err != nil {
		return err
	}

	view, err := a.system.View(ticketID)
	if err != nil {
		return err
	}

	out := p.Out()
	fmt.Fprintf(out, "Ticket ID: %d\n", view.Booking.TicketID)
	fmt.Fprintf(out, "Passenger Name: %s\n", view.Booking.PassengerName)
	fmt.Fprintf(out, "Flight No: %s, Destination: %s, Price: $%.2f\n",
		view.Flight.Number, view.Flight.Destination, view.Flight.Price)
	return nil
}

func (a *App) generateReport(p *menu.Prompter) error {
	report := a.system.Report()
	out := p.Out()

	fmt.Fprintln(out, "\n--- Summary Report ---")
	fmt.Fprintln(out, "Flights:")
	for _, f := range report.Flights {
		fmt.Fprintf(out, "Flight No: %s, Destination: %s, Seats: %d/%d, Price: $%.2f\n",
			f.Number, f.Destination, f.AvailableSeats, f.TotalSeats, f.Price)
	}
	fmt.Fprintln(out, "\nBookings:")
	for _, b := range report.Bookings {
		fmt.Fprintf(out, "Ticket ID: %d, Passenger: %s, Flight No: %s\n",
			b.TicketID, b.PassengerName, b.FlightNumber)
	}
	return nil
}
