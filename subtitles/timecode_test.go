package subtitles

import "testing"

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"0:00:00.00", 0},
		{"0:00:01.00", 1000},
		{"1:02:03.50", 3723500},
		{"0:00:00.01", 10},
		{"10:00:00.00", 36000000},
		{" 0:00:02.00 ", 2000},
	}

	for _, test := range tests {
		if got := ParseTimestamp(test.input); got != test.want {
			t.Errorf("ParseTimestamp(%q) = %d, want %d", test.input, got, test.want)
		}
	}
}

func TestParseTimestamp_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint64
	}{
		{"two fields", "12:34", 0},
		{"four fields", "1:2:3:4", 0},
		{"empty", "", 0},
		{"garbage hours still counts other fields", "x:01:00.00", 60000},
		{"garbage seconds", "0:01:zz", 60000},
	}

	for _, test := range tests {
		if got := ParseTimestamp(test.input); got != test.want {
			t.Errorf("%s: ParseTimestamp(%q) = %d, want %d", test.name, test.input, got, test.want)
		}
	}
}

func TestParseTimestampStrict(t *testing.T) {
	got, err := ParseTimestampStrict("1:02:03.50")
	if err != nil {
		t.Fatalf("ParseTimestampStrict returned error: %v", err)
	}
	if got != 3723500 {
		t.Errorf("ParseTimestampStrict = %d, want 3723500", got)
	}

	for _, input := range []string{"12:34", "x:01:00.00", "0:01:zz", ""} {
		if _, err := ParseTimestampStrict(input); err == nil {
			t.Errorf("ParseTimestampStrict(%q) should have returned an error", input)
		}
	}
}

func TestFormatTimestamp_RoundTrip(t *testing.T) {
	tests := []struct {
		ms   uint64
		text string
	}{
		{0, "0:00:00.00"},
		{1000, "0:00:01.00"},
		{3723500, "1:02:03.50"},
		{36000010, "10:00:00.01"},
	}

	for _, test := range tests {
		if got := FormatTimestamp(test.ms); got != test.text {
			t.Errorf("FormatTimestamp(%d) = %q, want %q", test.ms, got, test.text)
		}
		if got := ParseTimestamp(test.text); got != test.ms {
			t.Errorf("ParseTimestamp(%q) = %d, want %d", test.text, got, test.ms)
		}
	}
}
