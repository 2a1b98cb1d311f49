package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2024, time.February, 30), New(2024, time.March, 1); got != want {
		t.Errorf("New(2024-02-30) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-05", want: New(2024, time.January, 5)},
		{in: "2024-1-5", want: New(2024, time.January, 5)},
		{in: " 2024-12-31 ", want: New(2024, time.December, 31)},
		{in: "2024-02-29", want: New(2024, time.February, 29)},
		{in: "2024-13-40", wantErr: true},
		{in: "2023-02-29", wantErr: true},
		{in: "05/01/2024", wantErr: true},
		{in: "yesterday", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := New(2024, 1, 5).String(); got != "2024-01-05" {
		t.Errorf("String() = %q, want %q", got, "2024-01-05")
	}
}

func TestTodayIsLocal(t *testing.T) {
	y, m, d := time.Now().Date()
	if got := Today(); got != New(y, m, d) && got != New(y, m, d).Add(1) {
		// the second case only covers a test running across midnight.
		t.Errorf("Today() = %v, want %v", got, New(y, m, d))
	}
}

func TestJSON(t *testing.T) {
	var v struct {
		On Date `json:"on"`
	}
	if err := json.Unmarshal([]byte(`{"on":"2025-7-1"}`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	got, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `{"on":"2025-07-01"}`; string(got) != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}

func TestBeforeAfter(t *testing.T) {
	a, b := New(2024, 1, 5), New(2024, 1, 6)
	if !a.Before(b) || b.Before(a) || a.After(b) || !b.After(a) {
		t.Errorf("inconsistent ordering between %v and %v", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a day is neither before nor after itself")
	}
}
