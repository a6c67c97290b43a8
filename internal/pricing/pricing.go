// Package pricing holds the nightly price computation: the weekend/holiday
// rate classifier and the tiered multi-night discount. Everything here is
// pure; callers load domos, holidays and tiers from the store.
package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/Nicodiaz1/gestion-reservas-domos/internal/domain"
)

const DateLayout = "2006-01-02"

var ErrInvalidRange = errors.New("end date must be after start date")

// HolidaySet is a membership set of calendar dates, keyed by ISO date.
type HolidaySet map[string]struct{}

func NewHolidaySet(dates []time.Time) HolidaySet {
	s := make(HolidaySet, len(dates))
	for _, d := range dates {
		s[d.Format(DateLayout)] = struct{}{}
	}
	return s
}

func (s HolidaySet) Contains(d time.Time) bool {
	_, ok := s[d.Format(DateLayout)]
	return ok
}

// IsWeekendRate reports whether the night starting on d is charged at the
// weekend rate: Friday, Saturday and Sunday nights, plus holidays.
func IsWeekendRate(d time.Time, holidays HolidaySet) bool {
	switch d.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	}
	return holidays.Contains(d)
}

// Nights returns the stay length in whole days for [start, end).
func Nights(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// DefaultTiers is the discount table used when no admin configuration
// exists: 10% from 3 nights, 15% from 7.
func DefaultTiers() []domain.DiscountTier {
	return []domain.DiscountTier{
		{MinNights: 3, Bps: 1000},
		{MinNights: 7, Bps: 1500},
	}
}

// DiscountBps picks the highest tier whose threshold the stay reaches.
// Tiers must be sorted by MinNights ascending. Zero when no tier matches.
func DiscountBps(nights int, tiers []domain.DiscountTier) int64 {
	var bps int64
	for _, t := range tiers {
		if nights >= t.MinNights {
			bps = t.Bps
		}
	}
	return bps
}

// Quote prices a stay in the given domo for [start, end): each night is
// charged at the weekday or weekend rate, then the tiered discount is
// applied. Amounts are whole pesos; the discount is truncated, never
// rounded up.
func Quote(
	d *domain.Domo,
	start, end time.Time,
	holidays HolidaySet,
	tiers []domain.DiscountTier,
) (domain.Quote, error) {
	nights := Nights(start, end)
	if nights <= 0 {
		return domain.Quote{}, ErrInvalidRange
	}

	var base int64
	for cur := start; cur.Before(end); cur = cur.AddDate(0, 0, 1) {
		if IsWeekendRate(cur, holidays) {
			base += d.WeekendRate
		} else {
			base += d.WeekdayRate
		}
	}

	discount := base * DiscountBps(nights, tiers) / 10000

	return domain.Quote{
		Nights:   nights,
		Base:     base,
		Discount: discount,
		Total:    base - discount,
	}, nil
}

// ParseTiers decodes the admin discount configuration, a JSON object
// mapping night thresholds to fractions, e.g. {"3": 0.10, "7": 0.15}.
// Fractions are converted to basis points and the result is sorted by
// threshold.
func ParseTiers(raw []byte) ([]domain.DiscountTier, error) {
	var m map[string]float64
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse discount tiers: %w", err)
	}

	tiers := make([]domain.DiscountTier, 0, len(m))
	for k, frac := range m {
		n, err := strconv.Atoi(k)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("parse discount tiers: bad threshold %q", k)
		}
		if frac < 0 || frac >= 1 {
			return nil, fmt.Errorf("parse discount tiers: bad fraction %v for %q", frac, k)
		}
		tiers = append(tiers, domain.DiscountTier{
			MinNights: n,
			Bps:       int64(math.Round(frac * 10000)),
		})
	}

	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinNights < tiers[j].MinNights })

	return tiers, nil
}

// TiersJSON renders tiers back to the stored JSON shape.
func TiersJSON(tiers []domain.DiscountTier) ([]byte, error) {
	m := make(map[string]float64, len(tiers))
	for _, t := range tiers {
		m[strconv.Itoa(t.MinNights)] = float64(t.Bps) / 10000
	}
	return json.Marshal(m)
}
