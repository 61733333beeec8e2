package utils

import "testing"

func TestValidateName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Jo", true},
		{"J", false},
		{"", false},
		{"  ", false},
		{" Jane Doe ", true},
		{" a ", false},
	}
	for _, c := range cases {
		if got := ValidateName(c.name); got != c.want {
			t.Fatalf("ValidateName(%q)=%v, want %v", c.name, got, c.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"not-an-email", false},
		{"name@example.com", true},
		{"name@sub.example.co", true},
		{"two words@example.com", false},
		{"missing-tld@example", false},
		{"@example.com", false},
		{"name@.com", false},
	}
	for _, c := range cases {
		if got := ValidateEmail(c.email); got != c.want {
			t.Fatalf("ValidateEmail(%q)=%v, want %v", c.email, got, c.want)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"123-456-7890", true},
		{"(123) 456-7890", true},
		{"1234567890", true},
		{"12345", false},
		{"123-45-67890", false},
		{"(123)456-7890", false},
		{"12345678901", false},
		{"abc-def-ghij", false},
	}
	for _, c := range cases {
		if got := ValidatePhone(c.phone); got != c.want {
			t.Fatalf("ValidatePhone(%q)=%v, want %v", c.phone, got, c.want)
		}
	}
}
