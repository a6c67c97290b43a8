package pricing

import (
	"testing"
	"time"

	"github.com/Nicodiaz1/gestion-reservas-domos/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var testDomo = domain.Domo{
	ID:          1,
	Name:        "Domo Aguaribay",
	WeekdayRate: 75000,
	WeekendRate: 110000,
}

func TestIsWeekendRate(t *testing.T) {
	holidays := NewHolidaySet([]time.Time{date(2026, time.May, 25)})

	cases := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"monday", date(2026, time.March, 2), false},
		{"thursday", date(2026, time.March, 5), false},
		{"friday", date(2026, time.March, 6), true},
		{"saturday", date(2026, time.March, 7), true},
		{"sunday", date(2026, time.March, 8), true},
		{"holiday on a monday", date(2026, time.May, 25), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsWeekendRate(tc.d, holidays); got != tc.want {
				t.Errorf("IsWeekendRate(%s) = %v, want %v", tc.d.Format(DateLayout), got, tc.want)
			}
		})
	}
}

func TestQuoteTwoWeekdayNights(t *testing.T) {
	// Mon -> Wed: two weekday nights, below the 3-night discount tier.
	q, err := Quote(&testDomo, date(2026, time.March, 2), date(2026, time.March, 4), nil, DefaultTiers())
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}

	if q.Nights != 2 {
		t.Errorf("nights = %d, want 2", q.Nights)
	}
	if q.Base != 150000 {
		t.Errorf("base = %d, want 150000", q.Base)
	}
	if q.Discount != 0 {
		t.Errorf("discount = %d, want 0", q.Discount)
	}
	if q.Total != 150000 {
		t.Errorf("total = %d, want 150000", q.Total)
	}
}

func TestQuoteSevenNightsWithDiscount(t *testing.T) {
	// Mon -> Mon: 4 weekday + 3 weekend nights, 15% tier.
	q, err := Quote(&testDomo, date(2026, time.March, 2), date(2026, time.March, 9), nil, DefaultTiers())
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}

	wantBase := int64(4*75000 + 3*110000)
	wantDiscount := wantBase * 1500 / 10000

	if q.Nights != 7 {
		t.Errorf("nights = %d, want 7", q.Nights)
	}
	if q.Base != wantBase {
		t.Errorf("base = %d, want %d", q.Base, wantBase)
	}
	if q.Discount != wantDiscount {
		t.Errorf("discount = %d, want %d", q.Discount, wantDiscount)
	}
	if q.Total != wantBase-wantDiscount {
		t.Errorf("total = %d, want %d", q.Total, wantBase-wantDiscount)
	}
}

func TestDiscountApplication(t *testing.T) {
	// 2 weekend + 5 weekday nights gross 595000; 15% off leaves 505750.
	base := int64(2*110000 + 5*75000)
	discount := base * DiscountBps(7, DefaultTiers()) / 10000

	if discount != 89250 {
		t.Errorf("discount = %d, want 89250", discount)
	}
	if base-discount != 505750 {
		t.Errorf("total = %d, want 505750", base-discount)
	}
}

func TestQuoteHolidayChargesWeekendRate(t *testing.T) {
	holidays := NewHolidaySet([]time.Time{date(2026, time.July, 9)})

	// Wed -> Fri: the Thursday holiday is charged at the weekend rate.
	q, err := Quote(&testDomo, date(2026, time.July, 8), date(2026, time.July, 10), holidays, DefaultTiers())
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}

	if q.Base != 75000+110000 {
		t.Errorf("base = %d, want %d", q.Base, 75000+110000)
	}
}

func TestQuoteInvalidRange(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"same day", date(2026, time.March, 2), date(2026, time.March, 2)},
		{"end before start", date(2026, time.March, 4), date(2026, time.March, 2)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Quote(&testDomo, tc.start, tc.end, nil, DefaultTiers()); err != ErrInvalidRange {
				t.Errorf("err = %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestQuoteBaseMonotonicInNights(t *testing.T) {
	start := date(2026, time.March, 2)

	var prev int64
	for n := 1; n <= 14; n++ {
		q, err := Quote(&testDomo, start, start.AddDate(0, 0, n), nil, nil)
		if err != nil {
			t.Fatalf("Quote(%d nights) failed: %v", n, err)
		}
		if q.Base <= prev {
			t.Errorf("base for %d nights = %d, not greater than %d", n, q.Base, prev)
		}
		prev = q.Base
	}
}

func TestQuoteIsPure(t *testing.T) {
	holidays := NewHolidaySet([]time.Time{date(2026, time.December, 25)})
	start, end := date(2026, time.December, 21), date(2026, time.December, 28)

	first, err := Quote(&testDomo, start, end, holidays, DefaultTiers())
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	second, err := Quote(&testDomo, start, end, holidays, DefaultTiers())
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}

	if first != second {
		t.Errorf("identical inputs priced differently: %+v vs %+v", first, second)
	}
}

func TestDiscountBps(t *testing.T) {
	tiers := []domain.DiscountTier{
		{MinNights: 2, Bps: 500},
		{MinNights: 3, Bps: 1000},
		{MinNights: 5, Bps: 1500},
		{MinNights: 7, Bps: 2000},
	}

	cases := []struct {
		nights int
		want   int64
	}{
		{1, 0},
		{2, 500},
		{3, 1000},
		{4, 1000},
		{5, 1500},
		{6, 1500},
		{7, 2000},
		{30, 2000},
	}

	for _, tc := range cases {
		if got := DiscountBps(tc.nights, tiers); got != tc.want {
			t.Errorf("DiscountBps(%d) = %d, want %d", tc.nights, got, tc.want)
		}
	}
}

func TestParseTiers(t *testing.T) {
	tiers, err := ParseTiers([]byte(`{"7": 0.20, "2": 0.05, "3": 0.10, "5": 0.15}`))
	if err != nil {
		t.Fatalf("ParseTiers failed: %v", err)
	}

	want := []domain.DiscountTier{
		{MinNights: 2, Bps: 500},
		{MinNights: 3, Bps: 1000},
		{MinNights: 5, Bps: 1500},
		{MinNights: 7, Bps: 2000},
	}

	if len(tiers) != len(want) {
		t.Fatalf("got %d tiers, want %d", len(tiers), len(want))
	}
	for i := range want {
		if tiers[i] != want[i] {
			t.Errorf("tier %d = %+v, want %+v", i, tiers[i], want[i])
		}
	}
}

func TestParseTiersRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		`not json`,
		`{"zero": 0.1}`,
		`{"-1": 0.1}`,
		`{"3": 1.5}`,
		`{"3": -0.1}`,
	} {
		if _, err := ParseTiers([]byte(raw)); err == nil {
			t.Errorf("ParseTiers(%q) accepted invalid input", raw)
		}
	}
}
