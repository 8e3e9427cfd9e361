//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"regexp"
	"testing"
)

func TestNewFaker(t *testing.T) {
	f := NewFaker()
	if f == nil {
		t.Fatal("NewFaker returned nil")
	}
	if f.faker == nil {
		t.Fatal("faker field is nil")
	}
}

func TestNewFakerWithSeed(t *testing.T) {
	seed := uint64(12345)
	f1 := NewFakerWithSeed(seed)
	f2 := NewFakerWithSeed(seed)

	// Same seed should produce same sequence
	for i := 0; i < 10; i++ {
		v1 := f1.Int(0, 1000)
		v2 := f2.Int(0, 1000)
		if v1 != v2 {
			t.Errorf("Same seed produced different values: %d != %d", v1, v2)
		}
	}
}

func TestFakerInt(t *testing.T) {
	f := NewFaker()
	seenMin, seenMax := false, false
	for i := 0; i < 1000; i++ {
		v := f.Int(5, 10)
		if v < 5 || v > 10 {
			t.Errorf("Int %d not in range [5, 10]", v)
		}
		seenMin = seenMin || v == 5
		seenMax = seenMax || v == 10
	}
	if !seenMin || !seenMax {
		t.Error("Int should include both bounds")
	}
}

func TestFakerFloat64(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 100; i++ {
		v := f.Float64(1.5, 3.5)
		if v < 1.5 || v > 3.5 {
			t.Errorf("Float64 %f not in range [1.5, 3.5]", v)
		}
	}
}

func TestFakerChance(t *testing.T) {
	f := NewFakerWithSeed(1)
	for i := 0; i < 100; i++ {
		if f.Chance(0) {
			t.Fatal("Chance(0) should never be true")
		}
		if !f.Chance(1) {
			t.Fatal("Chance(1) should always be true")
		}
	}
}

func TestFakerPrice(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 100; i++ {
		p := f.Price(5, 500)
		if p.LessThan(decimalFromString(t, "5")) || p.GreaterThan(decimalFromString(t, "500")) {
			t.Errorf("Price %s not in range [5, 500]", p)
		}
		if p.Exponent() < -2 {
			t.Errorf("Price %s has more than 2 decimals", p)
		}
	}
}

func TestFakerPhone(t *testing.T) {
	f := NewFaker()
	re := regexp.MustCompile(`^\+1-[1-9]\d{2}-[1-9]\d{2}-[1-9]\d{3}$`)
	for i := 0; i < 20; i++ {
		if p := f.Phone(); !re.MatchString(p) {
			t.Errorf("Phone %q does not match +1-XXX-XXX-XXXX", p)
		}
	}
}

func TestChoose(t *testing.T) {
	f := NewFaker()
	items := []string{"a", "b", "c", "d", "e"}

	for i := 0; i < 100; i++ {
		chosen := Choose(f, items)
		found := false
		for _, item := range items {
			if item == chosen {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Choose returned item not in slice: %s", chosen)
		}
	}
}

func TestChooseEmpty(t *testing.T) {
	f := NewFaker()
	var items []string

	chosen := Choose(f, items)
	if chosen != "" {
		t.Errorf("Choose on empty slice should return zero value, got: %s", chosen)
	}
}

func TestSample(t *testing.T) {
	f := NewFakerWithSeed(99)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	got := Sample(f, items, 4)
	if len(got) != 4 {
		t.Fatalf("Sample should return 4 items, got %d", len(got))
	}

	seen := make(map[int]bool)
	for _, v := range got {
		if v < 1 || v > 10 {
			t.Errorf("Sample returned item not in slice: %d", v)
		}
		if seen[v] {
			t.Errorf("Sample returned duplicate item: %d", v)
		}
		seen[v] = true
	}

	// Input must be untouched
	for i, v := range items {
		if v != i+1 {
			t.Fatalf("Sample modified its input: %v", items)
		}
	}
}

func TestSampleClamp(t *testing.T) {
	f := NewFaker()
	items := []string{"x", "y"}

	if got := Sample(f, items, 5); len(got) != 2 {
		t.Errorf("Sample should clamp to len(items), got %d", len(got))
	}
	if got := Sample(f, items, 0); len(got) != 0 {
		t.Errorf("Sample(0) should be empty, got %d", len(got))
	}
	if got := Sample(f, []string{}, 3); len(got) != 0 {
		t.Errorf("Sample of empty slice should be empty, got %d", len(got))
	}
}

// Benchmarks
func BenchmarkFakerInt(b *testing.B) {
	f := NewFaker()
	for i := 0; i < b.N; i++ {
		f.Int(0, 1000)
	}
}

func BenchmarkChoose(b *testing.B) {
	f := NewFaker()
	items := []string{"a", "b", "c", "d", "e"}
	for i := 0; i < b.N; i++ {
		Choose(f, items)
	}
}
