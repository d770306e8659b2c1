package validate

import (
	"reflect"
	"testing"
	"time"
)

// fixed clock: 2025-06-15 18:30 local time
var testNow = time.Date(2025, 6, 15, 18, 30, 0, 0, time.Local)

func validForm() ReservationForm {
	return ReservationForm{
		Name:            "Alice",
		Email:           "alice@example.com",
		Phone:           "0102030405",
		Date:            "2099-01-01",
		Time:            "19:00",
		Guests:          "2",
		SpecialRequests: "",
	}
}

func TestReservationValid(t *testing.T) {
	data, errs := Reservation(validForm(), testNow)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if data.Name != "Alice" {
		t.Errorf("name = %q, want %q", data.Name, "Alice")
	}
	if data.Email != "alice@example.com" {
		t.Errorf("email = %q, want %q", data.Email, "alice@example.com")
	}
	if data.Phone != "0102030405" {
		t.Errorf("phone = %q, want %q", data.Phone, "0102030405")
	}
	if got := data.Date.Format("2006-01-02"); got != "2099-01-01" {
		t.Errorf("date = %q, want %q", got, "2099-01-01")
	}
	if data.Time != "19:00:00" {
		t.Errorf("time = %q, want %q", data.Time, "19:00:00")
	}
	if data.Guests != 2 {
		t.Errorf("guests = %d, want 2", data.Guests)
	}
	if data.SpecialRequests != "" {
		t.Errorf("special requests = %q, want empty", data.SpecialRequests)
	}
}

func TestReservationAllRequiredMissing(t *testing.T) {
	_, errs := Reservation(ReservationForm{}, testNow)
	if len(errs) == 0 {
		t.Fatal("expected errors for empty form")
	}
	for _, field := range []string{"name", "email", "phone", "date", "time", "guests"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("missing error for field %q: %v", field, errs)
		}
	}
}

func TestReservationReportsEveryInvalidField(t *testing.T) {
	f := validForm()
	f.Name = "   "
	f.Email = "not-an-email"
	f.Guests = "abc"
	data, errs := Reservation(f, testNow)
	if len(errs) != 3 {
		t.Fatalf("errors = %v, want exactly name/email/guests", errs)
	}
	if !reflect.DeepEqual(data, CreateReservationData{}) {
		t.Errorf("expected zero record on failure, got %+v", data)
	}
}

func TestReservationEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"alice@example.com", true},
		{"a.b+c@sub.example.co", true},
		{"  ALICE@Example.COM  ", true}, // trimmed and lowercased
		{"not-an-email", false},
		{"missing@dot", false},
		{"@example.com", false},
		{"alice@", false},
		{"two words@example.com", false},
	}
	for _, tc := range cases {
		f := validForm()
		f.Email = tc.email
		_, errs := Reservation(f, testNow)
		if tc.ok && errs != nil {
			t.Errorf("email %q: unexpected errors %v", tc.email, errs)
		}
		if !tc.ok {
			if _, found := errs["email"]; !found {
				t.Errorf("email %q: expected email error, got %v", tc.email, errs)
			}
		}
	}
}

func TestReservationGuests(t *testing.T) {
	bad := []string{"0", "-2", "abc", "1.5", "", "21"}
	for _, g := range bad {
		f := validForm()
		f.Guests = g
		_, errs := Reservation(f, testNow)
		if _, found := errs["guests"]; !found {
			t.Errorf("guests %q: expected guests error, got %v", g, errs)
		}
	}
	for _, g := range []string{"1", "2", "20"} {
		f := validForm()
		f.Guests = g
		if _, errs := Reservation(f, testNow); errs != nil {
			t.Errorf("guests %q: unexpected errors %v", g, errs)
		}
	}
}

func TestReservationDate(t *testing.T) {
	f := validForm()
	f.Date = "2025-06-14" // yesterday relative to testNow
	if _, errs := Reservation(f, testNow); errs["date"] == "" {
		t.Errorf("past date: expected date error, got %v", errs)
	}

	f.Date = "2025-06-15" // same calendar day is always bookable
	if _, errs := Reservation(f, testNow); errs != nil {
		t.Errorf("today: unexpected errors %v", errs)
	}

	f.Date = "15/06/2025"
	if _, errs := Reservation(f, testNow); errs["date"] == "" {
		t.Errorf("malformed date: expected date error, got %v", errs)
	}
}

func TestReservationTime(t *testing.T) {
	for _, bad := range []string{"7pm", "25:00", "19", "19:60"} {
		f := validForm()
		f.Time = bad
		if _, errs := Reservation(f, testNow); errs["time"] == "" {
			t.Errorf("time %q: expected time error, got %v", bad, errs)
		}
	}
}

func TestReservationTrimsFields(t *testing.T) {
	f := validForm()
	f.Name = "  Alice  "
	f.Phone = " 0102030405 "
	f.SpecialRequests = "  window table  "
	data, errs := Reservation(f, testNow)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if data.Name != "Alice" || data.Phone != "0102030405" || data.SpecialRequests != "window table" {
		t.Errorf("fields not trimmed: %+v", data)
	}
}

// The validator is a pure function: same input, same output.
func TestReservationIdempotent(t *testing.T) {
	f := validForm()
	f.Email = "not-an-email"
	d1, e1 := Reservation(f, testNow)
	d2, e2 := Reservation(f, testNow)
	if !reflect.DeepEqual(d1, d2) || !reflect.DeepEqual(e1, e2) {
		t.Errorf("results differ across calls: (%+v,%v) vs (%+v,%v)", d1, e1, d2, e2)
	}

	ok := validForm()
	v1, _ := Reservation(ok, testNow)
	v2, _ := Reservation(ok, testNow)
	if !reflect.DeepEqual(v1, v2) {
		t.Errorf("valid results differ across calls: %+v vs %+v", v1, v2)
	}
}
