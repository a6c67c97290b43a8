package query

import (
	"reflect"
	"testing"
	"time"

	"github.com/Nicodiaz1/gestion-reservas-domos/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExpandRangesIncludesBothEndpoints(t *testing.T) {
	got := ExpandRanges([]domain.DateRange{
		{Start: date("2026-03-02"), End: date("2026-03-04")},
	})
	want := []string{"2026-03-02", "2026-03-03", "2026-03-04"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExpandRangesSingleDay(t *testing.T) {
	got := ExpandRanges([]domain.DateRange{
		{Start: date("2026-03-02"), End: date("2026-03-02")},
	})
	want := []string{"2026-03-02"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExpandRangesMultiple(t *testing.T) {
	got := ExpandRanges([]domain.DateRange{
		{Start: date("2026-03-02"), End: date("2026-03-03")},
		{Start: date("2026-03-10"), End: date("2026-03-11")},
	})
	want := []string{"2026-03-02", "2026-03-03", "2026-03-10", "2026-03-11"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// An empty result must serialize as [], never null.
func TestExpandRangesEmpty(t *testing.T) {
	got := ExpandRanges(nil)
	if got == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
