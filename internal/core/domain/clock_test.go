package domain

import "testing"

func TestParseClock_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"12:00", 720},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if err != nil {
			t.Fatalf("ParseClock(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseClock_Invalid(t *testing.T) {
	cases := []string{
		"",
		"9:30",
		"09:3",
		"0930",
		"24:00",
		"12:60",
		"ab:cd",
		"12-30",
		"12:30:00",
	}
	for _, in := range cases {
		if _, err := ParseClock(in); err != ErrBadClock {
			t.Fatalf("ParseClock(%q): expected ErrBadClock, got %v", in, err)
		}
	}
}

func TestBookingStatus_Valid(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if BookingStatus("completed").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}

func TestBookingStatus_Blocks(t *testing.T) {
	if !StatusPending.Blocks() || !StatusConfirmed.Blocks() {
		t.Fatalf("pending and confirmed must block the slot")
	}
	if StatusCancelled.Blocks() {
		t.Fatalf("cancelled must never block the slot")
	}
}

func TestBooking_Editable(t *testing.T) {
	b := &Booking{Status: StatusPending}
	if !b.Editable() {
		t.Fatalf("pending booking must be editable")
	}
	b.Status = StatusConfirmed
	if b.Editable() {
		t.Fatalf("confirmed booking must not be editable")
	}
}
