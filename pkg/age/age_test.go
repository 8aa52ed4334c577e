package age

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name     string
		birth    time.Time
		assessed time.Time
		want     Age
	}{
		{"day and month borrow", date(2020, 10, 1), date(2025, 9, 15), Age{4, 11, 14}},
		{"same day", date(2021, 3, 3), date(2021, 3, 3), Age{0, 0, 0}},
		{"exact birthday", date(2019, 6, 10), date(2024, 6, 10), Age{5, 0, 0}},
		{"day borrow uses 30 not calendar days", date(2020, 1, 31), date(2025, 3, 1), Age{5, 1, 0}},
		{"month borrow only", date(2019, 11, 5), date(2024, 2, 20), Age{4, 3, 15}},
		{"day borrow across february", date(2020, 2, 20), date(2024, 3, 10), Age{4, 0, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Between(tt.birth, tt.assessed)
			if err != nil {
				t.Fatalf("Between() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Between() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBetweenIgnoresTimeOfDay(t *testing.T) {
	birth := time.Date(2020, 10, 1, 23, 59, 0, 0, time.UTC)
	assessed := time.Date(2020, 10, 1, 0, 1, 0, 0, time.UTC)

	got, err := Between(birth, assessed)
	if err != nil {
		t.Fatalf("Between() error: %v", err)
	}
	if got != (Age{}) {
		t.Errorf("Between() = %+v, want zero age", got)
	}
}

func TestBetweenInvalidOrder(t *testing.T) {
	_, err := Between(date(2025, 9, 15), date(2025, 9, 14))
	if !errors.Is(err, ErrInvalidDateOrder) {
		t.Fatalf("expected ErrInvalidDateOrder, got %v", err)
	}
}

func TestAgeString(t *testing.T) {
	a := Age{Years: 4, Months: 11, Days: 14}
	if a.String() != "4y 11m 14d" {
		t.Errorf("String() = %q", a.String())
	}
	if a.TotalMonths() != 59 {
		t.Errorf("TotalMonths() = %d, want 59", a.TotalMonths())
	}
}
