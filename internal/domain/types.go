package domain

import "time"

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmada"
	ReservationCancelled ReservationStatus = "cancelada"
)

// Domo is a rentable lodging unit with two-tier nightly pricing.
// Rates are whole pesos.
type Domo struct {
	ID          int64
	Name        string
	Description string
	Capacity    int
	WeekdayRate int64
	WeekendRate int64
}

type Reservation struct {
	ID           int64
	DomoID       int64
	CustomerName string
	Email        string
	Phone        string
	StartDate    time.Time // inclusive, first occupied night
	EndDate      time.Time // exclusive for pricing; last occupied night is EndDate-1
	Nights       int
	TotalPrice   int64
	Discount     int64
	Status       ReservationStatus
	CreatedAt    time.Time
}

// ReservationWithDomo carries the domo name alongside the reservation
// for the admin listing.
type ReservationWithDomo struct {
	Reservation
	DomoName string
}

type Holiday struct {
	ID   int64
	Date time.Time
	Name string
}

// DateRange is a booked [Start, End] pair as stored. Overlap checks and the
// calendar display both treat End as occupied.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DiscountTier maps a minimum night count to a discount expressed in
// basis points (1500 = 15%). Tiers are kept sorted by MinNights ascending;
// the highest tier whose MinNights <= nights wins.
type DiscountTier struct {
	MinNights int
	Bps       int64
}

// Quote is the priced outcome of a candidate stay. All amounts are whole
// pesos, truncated.
type Quote struct {
	Nights   int
	Base     int64
	Discount int64
	Total    int64
}
