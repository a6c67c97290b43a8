package booking

import (
	"context"
	"errors"
	"testing"
	"time"
)

// Validation failures must be reported before the service ever touches
// storage, so a service with no backing dependencies is enough here.
func newBareService() *Service {
	return New(nil, nil, nil, nil)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCreateReservationRejectsInvalidRange(t *testing.T) {
	s := newBareService()

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"same day", "2026-03-02", "2026-03-02"},
		{"end before start", "2026-03-05", "2026-03-02"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateReservation(context.Background(), CreateReservationInput{
				DomoID:       1,
				CustomerName: "Ana",
				Phone:        "+54 11 5555-0000",
				StartDate:    date(tc.start),
				EndDate:      date(tc.end),
			}, "")
			if !errors.Is(err, ErrInvalidRange) {
				t.Fatalf("expected ErrInvalidRange, got %v", err)
			}
		})
	}
}

func TestCreateReservationRequiresPhone(t *testing.T) {
	s := newBareService()

	for _, phone := range []string{"", "   "} {
		_, err := s.CreateReservation(context.Background(), CreateReservationInput{
			DomoID:       1,
			CustomerName: "Ana",
			Phone:        phone,
			StartDate:    date("2026-03-02"),
			EndDate:      date("2026-03-04"),
		}, "")
		if !errors.Is(err, ErrMissingContact) {
			t.Fatalf("phone %q: expected ErrMissingContact, got %v", phone, err)
		}
	}
}

func TestCreateReservationRangeCheckedBeforeContact(t *testing.T) {
	s := newBareService()

	// Both fields invalid: the range error wins.
	_, err := s.CreateReservation(context.Background(), CreateReservationInput{
		DomoID:    1,
		StartDate: date("2026-03-05"),
		EndDate:   date("2026-03-02"),
	}, "")
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}
