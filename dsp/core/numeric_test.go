package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0.01, max: 1, expected: 0.01},
		{name: "above", value: 10.2, min: 0.01, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
		{name: "at floor", value: 0.01, min: 0.01, max: 1, expected: 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(-99, 1); got != 1 {
		t.Fatalf("ClampInt(-99, 1) = %d, want 1", got)
	}
	if got := ClampInt(7, 1); got != 7 {
		t.Fatalf("ClampInt(7, 1) = %d, want 7", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("expected zeros to be equal with default eps")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Fatal("1.5 should be finite")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Fatal("NaN/Inf should not be finite")
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-3)
	db := LinearToDB(linear)
	if !NearlyEqual(db, -3, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-3)) = %v, want -3", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}
