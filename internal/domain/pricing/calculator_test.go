package pricing

import (
	"testing"

	"caregiver-marketplace/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDayCount(t *testing.T) {
	tests := []struct {
		name    string
		dayType entity.DayType
		single  string
		start   string
		end     string
		want    int
	}{
		{"one day with date", entity.DayTypeOneDay, "2025-11-10", "", "", 1},
		{"one day accepts any non-empty value", entity.DayTypeOneDay, "tomorrow", "", "", 1},
		{"one day without date", entity.DayTypeOneDay, "", "2025-11-10", "2025-11-12", 0},
		{"range is inclusive", entity.DayTypeMultipleDays, "", "2025-11-10", "2025-11-12", 3},
		{"same start and end", entity.DayTypeMultipleDays, "", "2025-11-10", "2025-11-10", 1},
		{"range across month end", entity.DayTypeMultipleDays, "", "2025-11-28", "2025-12-02", 5},
		{"reversed range", entity.DayTypeMultipleDays, "", "2025-11-12", "2025-11-10", 0},
		{"missing end", entity.DayTypeMultipleDays, "", "2025-11-12", "", 0},
		{"malformed start", entity.DayTypeMultipleDays, "", "2025-11", "2025-11-12", 0},
		{"impossible date", entity.DayTypeMultipleDays, "", "2025-02-30", "2025-03-02", 0},
		{"multiple days ignores single date", entity.DayTypeMultipleDays, "2025-11-10", "", "", 0},
		{"unknown day type", entity.DayType("Weekly"), "2025-11-10", "2025-11-10", "2025-11-12", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayCount(tt.dayType, tt.single, tt.start, tt.end))
		})
	}
}

func TestComputeTotal(t *testing.T) {
	halfDay := &entity.ServicePackage{Name: "Half Day Care", Price: decimal.NewFromInt(1500)}

	t.Run("multiple days multiplies inclusive day count", func(t *testing.T) {
		got := ComputeTotal(halfDay, entity.DayTypeMultipleDays, "", "2025-11-10", "2025-11-12")
		assert.True(t, got.Equal(decimal.NewFromInt(4500)), "got %s", got)
	})

	t.Run("one day charges a single rate", func(t *testing.T) {
		got := ComputeTotal(halfDay, entity.DayTypeOneDay, "2025-11-10", "", "")
		assert.True(t, got.Equal(decimal.NewFromInt(1500)), "got %s", got)
	})

	t.Run("reversed range is zero", func(t *testing.T) {
		got := ComputeTotal(halfDay, entity.DayTypeMultipleDays, "", "2025-11-12", "2025-11-10")
		assert.True(t, got.IsZero())
	})

	t.Run("no package is zero", func(t *testing.T) {
		got := ComputeTotal(nil, entity.DayTypeMultipleDays, "", "2025-11-10", "2025-11-12")
		assert.True(t, got.IsZero())
	})

	t.Run("fractional prices stay exact", func(t *testing.T) {
		pkg := &entity.ServicePackage{Price: decimal.RequireFromString("1333.33")}
		got := ComputeTotal(pkg, entity.DayTypeMultipleDays, "", "2025-11-10", "2025-11-12")
		assert.Equal(t, "3999.99", got.StringFixed(2))
	})
}

func TestMinimumAdvance(t *testing.T) {
	tests := []struct {
		total string
		want  string
	}{
		{"4500", "1500"},
		{"1000", "334"},
		{"3999.99", "1334"},
		{"0", "0"},
		{"-10", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			got := MinimumAdvance(decimal.RequireFromString(tt.total))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}
