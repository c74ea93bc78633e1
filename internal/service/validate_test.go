package service

import "testing"

func TestValidPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"0712345678", true},
		{"1234567890", true},
		{"123456789", false},
		{"12345678901", false},
		{"07123456ab", false},
		{"", false},
		{"07 1234567", false},
	}
	for _, tc := range cases {
		if got := ValidPhone(tc.phone); got != tc.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}

func TestFieldErrorsMessage(t *testing.T) {
	errs := FieldErrors{
		{Field: "title", Message: "must not be empty"},
		{Field: "pay", Message: "must not be negative"},
	}
	want := "invalid input: title: must not be empty; pay: must not be negative"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	var empty FieldErrors
	if empty.OrNil() != nil {
		t.Error("empty FieldErrors should collapse to nil")
	}
}

func TestValidateCoordinates(t *testing.T) {
	if errs := validateCoordinates(nil, 36.8, -1.29); len(errs) != 0 {
		t.Errorf("valid coordinates rejected: %v", errs)
	}
	if errs := validateCoordinates(nil, 181, 91); len(errs) != 2 {
		t.Errorf("out-of-range coordinates produced %d errors, want 2", len(errs))
	}
}
