package domain

import "testing"

func TestIsValidCPF(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"seed admin", "98659502000", true},
		{"valid digits", "52998224725", true},
		{"masked", "529.982.247-25", true},
		{"surrounding spaces", "  12345678909 ", true},
		{"empty", "", false},
		{"blank", "   ", false},
		{"short", "1234567890", false},
		{"long", "123456789090", false},
		{"letters", "1234567890a", false},
		{"all equal", "11111111111", false},
		{"bad first digit", "52998224715", false},
		{"bad second digit", "52998224726", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidCPF(tc.in); got != tc.want {
				t.Fatalf("IsValidCPF(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeCPF(t *testing.T) {
	if got := NormalizeCPF(" 529.982.247-25 "); got != "52998224725" {
		t.Fatalf("unexpected normalized cpf: %q", got)
	}
}
