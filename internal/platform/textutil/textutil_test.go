package textutil

import (
	"reflect"
	"testing"
)

func TestNormalizeStringMap(t *testing.T) {
	t.Run("trims and lowercases keys", func(t *testing.T) {
		input := map[string]string{
			" English ": " Welcome to Rumtek. ",
			"Hindi":     "नमस्ते",
			" ":         "ignored",
			"":          "ignored",
		}

		expected := map[string]string{
			"english": "Welcome to Rumtek.",
			"hindi":   "नमस्ते",
		}

		actual := NormalizeStringMap(input)
		if !reflect.DeepEqual(actual, expected) {
			t.Fatalf("expected %#v got %#v", expected, actual)
		}
	})

	t.Run("returns nil for nil or empty input", func(t *testing.T) {
		if NormalizeStringMap(nil) != nil {
			t.Fatalf("expected nil for nil input")
		}
		if NormalizeStringMap(map[string]string{}) != nil {
			t.Fatalf("expected nil for empty map")
		}
	})
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "Pemayangtse Monastery", expected: "pemayangtse-monastery"},
		{name: "punctuation collapses", input: "Sanga  Choeling!", expected: "sanga-choeling"},
		{name: "leading and trailing junk", input: "  --Rumtek-- ", expected: "rumtek"},
		{name: "empty", input: "", expected: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.input); got != tc.expected {
				t.Fatalf("Slugify(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 100); got != "short" {
		t.Fatalf("expected unchanged value, got %q", got)
	}
	if got := Truncate("abcdef", 3); got != "abc..." {
		t.Fatalf("expected abc..., got %q", got)
	}
	if got := Truncate("abcdef", 0); got != "abcdef" {
		t.Fatalf("expected unchanged value for zero limit, got %q", got)
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Rumtek Monastery", "rumtek") {
		t.Fatalf("expected case-insensitive match")
	}
	if ContainsFold("Rumtek", "pelling") {
		t.Fatalf("unexpected match")
	}
	if !ContainsFold("anything", "") {
		t.Fatalf("empty needle should match")
	}
}
