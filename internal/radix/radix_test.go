package radix

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		v    uint8
		b    Base
		want string
	}{
		{0, Binary, "0000"},
		{5, Binary, "0101"},
		{15, Binary, "1111"},
		{0, Decimal, "0"},
		{9, Decimal, "9"},
		{12, Decimal, "12"},
		{1, Hexadecimal, "1"},
		{10, Hexadecimal, "a"},
		{15, Hexadecimal, "f"},
	}
	for _, tc := range tests {
		if got := Format(tc.v, tc.b); got != tc.want {
			t.Errorf("Format(%d, %s) = %q, want %q", tc.v, tc.b, got, tc.want)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, b := range Bases() {
		for v := uint8(0); v <= MaxValue; v++ {
			got, ok := Parse(Format(v, b), b)
			if !ok {
				t.Fatalf("Parse(Format(%d, %s)) failed", v, b)
			}
			if got != v {
				t.Errorf("Parse(Format(%d, %s)) = %d", v, b, got)
			}
		}
	}
}

func TestParse_Binary(t *testing.T) {
	tests := []struct {
		in     string
		want   uint8
		wantOK bool
	}{
		{"101", 5, true},
		{"  0101", 5, true},
		{"1\n", 1, true},
		{"0", 0, true},
		{"", 0, false},
		{"   ", 0, false},
		{"10101", 0, false},
		{"2", 0, false},
		{"10x", 0, false},
		{"five", 0, false},
	}
	for _, tc := range tests {
		got, ok := Parse(tc.in, Binary)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("Parse(%q, binary) = %d, %v; want %d, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParse_DecimalAndHex(t *testing.T) {
	tests := []struct {
		in     string
		b      Base
		want   uint8
		wantOK bool
	}{
		{"5", Decimal, 5, true},
		{" 15 ", Decimal, 15, true},
		{"016", Decimal, 0, false},
		{"16", Decimal, 0, false},
		{"-1", Decimal, 0, false},
		{"+3", Decimal, 0, false},
		{"five", Decimal, 0, false},
		{"", Decimal, 0, false},
		{"a", Hexadecimal, 10, true},
		{"F", Hexadecimal, 15, true},
		{"0xb", Hexadecimal, 11, true},
		{"10", Hexadecimal, 0, false},
		{"g", Hexadecimal, 0, false},
		{"0x", Hexadecimal, 0, false},
	}
	for _, tc := range tests {
		got, ok := Parse(tc.in, tc.b)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("Parse(%q, %s) = %d, %v; want %d, %v", tc.in, tc.b, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestDigitCount(t *testing.T) {
	tests := []struct {
		v    uint8
		b    Base
		want int
	}{
		{1, Binary, 4},
		{5, Binary, 4},
		{9, Decimal, 1},
		{10, Decimal, 2},
		{15, Hexadecimal, 1},
	}
	for _, tc := range tests {
		if got := DigitCount(tc.v, tc.b); got != tc.want {
			t.Errorf("DigitCount(%d, %s) = %d, want %d", tc.v, tc.b, got, tc.want)
		}
	}
}

func TestPairs_Order(t *testing.T) {
	want := []Pair{
		{Binary, Decimal},
		{Binary, Hexadecimal},
		{Decimal, Binary},
		{Decimal, Hexadecimal},
		{Hexadecimal, Binary},
		{Hexadecimal, Decimal},
	}
	got := Pairs()
	if len(got) != len(want) {
		t.Fatalf("Pairs() returned %d pairs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pairs()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
