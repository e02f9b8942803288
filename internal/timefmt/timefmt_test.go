package timefmt

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "00:00.000"},
		{"minute and change", 65, "01:05.000"},
		{"hour bucket", 3661.5, "01:01:01.500"},
		{"fractional millis", 65.123, "01:05.123"},
		{"truncates below next second", 59.9995, "00:59.999"},
		{"truncates sub-microsecond remainder", 59.9999999999, "00:59.999"},
		{"truncates half a nanosecond short", 1.9999999995, "00:01.999"},
		{"stays under the hour", 3599.9999999999, "59:59.999"},
		{"exact minute", 60, "01:00.000"},
		{"just under an hour", 3599.999, "59:59.999"},
		{"exact hour", 3600, "01:00:00.000"},
		{"double digit hours", 36000.25, "10:00:00.250"},
		{"negative clamps", -4.2, "00:00.000"},
		{"nan clamps", math.NaN(), "00:00.000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(tt.in); got != tt.want {
				t.Fatalf("Format(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatIsMonotonicWithinHourBucket(t *testing.T) {
	t.Parallel()

	prev := Format(0)
	for ms := 1; ms < 3600*1000; ms += 997 {
		got := Format(float64(ms) / 1000)
		if got < prev {
			t.Fatalf("Format not monotonic at %dms: %q < %q", ms, got, prev)
		}
		prev = got
	}
}

func TestToMillisKeepsWholeMilliseconds(t *testing.T) {
	t.Parallel()

	for ms := int64(0); ms < 4*msPerHour; ms += 7 {
		if got := toMillis(float64(ms) / msPerSecond); got != ms {
			t.Fatalf("toMillis(%v) = %d, want %d", float64(ms)/msPerSecond, got, ms)
		}
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	if got := Range(0, 1.5); got != "00:00.000–00:01.500" {
		t.Fatalf("Range(0, 1.5) = %q", got)
	}
}
