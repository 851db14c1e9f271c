package scheduling

import (
	"reflect"
	"testing"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{name: "disjoint", a: Interval{540, 570}, b: Interval{600, 630}, want: false},
		{name: "identical", a: Interval{540, 570}, b: Interval{540, 570}, want: true},
		{name: "partial overlap", a: Interval{540, 600}, b: Interval{570, 630}, want: true},
		{name: "containment", a: Interval{540, 720}, b: Interval{600, 630}, want: true},
		{name: "touching ends do not overlap", a: Interval{540, 570}, b: Interval{570, 600}, want: false},
		{name: "touching starts reversed", a: Interval{570, 600}, b: Interval{540, 570}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestComputeSlots(t *testing.T) {
	tests := []struct {
		name        string
		open, close int
		granularity int
		busy        []Interval
		want        []int
	}{
		{
			name: "morning with one booking",
			open: 540, close: 720, granularity: 30,
			busy: []Interval{{600, 630}},
			want: []int{540, 570, 630, 660, 690},
		},
		{
			name: "no bookings",
			open: 540, close: 660, granularity: 30,
			want: []int{540, 570, 600, 630},
		},
		{
			name: "fully booked",
			open: 540, close: 600, granularity: 30,
			busy: []Interval{{540, 600}},
			want: nil,
		},
		{
			name: "trailing partial slot dropped",
			open: 540, close: 585, granularity: 30,
			want: []int{540},
		},
		{
			name: "long booking blocks several slots",
			open: 540, close: 720, granularity: 30,
			busy: []Interval{{555, 645}},
			want: []int{660, 690},
		},
		{
			name: "hourly granularity",
			open: 540, close: 720, granularity: 60,
			busy: []Interval{{600, 630}},
			want: []int{540, 660},
		},
		{
			name: "window shorter than a slot",
			open: 540, close: 555, granularity: 30,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSlots(tt.open, tt.close, tt.granularity, tt.busy)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputeSlots(%d, %d, %d, %v) = %v, want %v",
					tt.open, tt.close, tt.granularity, tt.busy, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{540, "9:00"},
		{570, "9:30"},
		{600, "10:00"},
		{0, "0:00"},
		{45, "0:45"},
		{825, "13:45"},
		{1439, "23:59"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.minutes); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "9:00", want: 540},
		{in: "09:00", want: 540},
		{in: "13:45", want: 825},
		{in: "0:00", want: 0},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "9:60", wantErr: true},
		{in: "-1:00", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
		{in: "9:00pm", wantErr: true},
		{in: "9:5", wantErr: true},
		{in: "9:005", wantErr: true},
		{in: "123:00", wantErr: true},
		{in: " 9:00", wantErr: true},
		{in: "9: 30", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) = %d, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseClockRoundTripsFormatClock(t *testing.T) {
	for _, minutes := range []int{540, 570, 600, 825, 1439} {
		got, err := ParseClock(FormatClock(minutes))
		if err != nil {
			t.Errorf("round trip of %d returned error: %v", minutes, err)
			continue
		}
		if got != minutes {
			t.Errorf("round trip of %d = %d", minutes, got)
		}
	}
}
