package common

import (
	"reflect"
	"testing"
)

func TestSplitBounded(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  []string
	}{
		{"a,b,c,d", 2, []string{"a", "b,c,d"}},
		{"a,b,c,d", 4, []string{"a", "b", "c", "d"}},
		{"a,b", 5, []string{"a", "b"}},
		{"no separator", 3, []string{"no separator"}},
		{"a,b,c", 1, []string{"a,b,c"}},
	}

	for _, test := range tests {
		got := SplitBounded(test.input, ",", test.max)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("SplitBounded(%q, %d) = %q, want %q", test.input, test.max, got, test.want)
		}
	}

	if got := SplitBounded("a,b", ",", 0); got != nil {
		t.Errorf("SplitBounded with max 0 = %q, want nil", got)
	}
}

func TestSubstr(t *testing.T) {
	tests := []struct {
		input  string
		start  int
		length int
		want   string
	}{
		{"hello", 0, 3, "hel"},
		{"hello", 2, 10, "llo"},
		{"hello", 9, 2, ""},
		{"héllo", 1, 2, "él"},
	}

	for _, test := range tests {
		if got := Substr(test.input, test.start, test.length); got != test.want {
			t.Errorf("Substr(%q, %d, %d) = %q, want %q", test.input, test.start, test.length, got, test.want)
		}
	}
}

func TestSubstrAll(t *testing.T) {
	if got := SubstrAll("hello", 2); got != "llo" {
		t.Errorf("SubstrAll = %q, want %q", got, "llo")
	}
	if got := SubstrAll("hi", 5); got != "" {
		t.Errorf("SubstrAll past end = %q, want empty", got)
	}
}
