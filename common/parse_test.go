package common

import "testing"

func TestIntOrDefault(t *testing.T) {
	tests := []struct {
		input string
		def   int
		want  int
	}{
		{"42", 0, 42},
		{" 7 ", 0, 7},
		{"-3", 0, -3},
		{"", 16, 16},
		{"abc", 16, 16},
		{"1.5", 2, 2},
	}

	for _, test := range tests {
		if got := IntOrDefault(test.input, test.def); got != test.want {
			t.Errorf("IntOrDefault(%q, %d) = %d, want %d", test.input, test.def, got, test.want)
		}
	}
}

func TestFloatOrDefault(t *testing.T) {
	tests := []struct {
		input string
		def   float64
		want  float64
	}{
		{"2.5", 0, 2.5},
		{"100", 0, 100},
		{"", 100, 100},
		{"wide", 100, 100},
	}

	for _, test := range tests {
		if got := FloatOrDefault(test.input, test.def); got != test.want {
			t.Errorf("FloatOrDefault(%q, %v) = %v, want %v", test.input, test.def, got, test.want)
		}
	}
}

func TestBoolFlag(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"-1", true},
		{" -1 ", true},
		{"0", false},
		{"1", false},
		{"true", false},
		{"", false},
	}

	for _, test := range tests {
		if got := BoolFlag(test.input); got != test.want {
			t.Errorf("BoolFlag(%q) = %v, want %v", test.input, got, test.want)
		}
	}
}
