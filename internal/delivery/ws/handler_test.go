package ws

import (
	"testing"
)

func TestOriginAllowed(t *testing.T) {
	allowed := []string{"http://localhost:8080", "https://chat.example.com"}

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true}, // same-origin request
		{"http://localhost:8080", true},
		{"https://chat.example.com", true},
		{"https://evil.example.com", false},
		{"http://localhost:3000", false},
	}

	for _, tc := range tests {
		if got := originAllowed(tc.origin, allowed); got != tc.want {
			t.Errorf("originAllowed(%q): expected %v, got %v", tc.origin, tc.want, got)
		}
	}
}

func TestOriginAllowed_Wildcard(t *testing.T) {
	if !originAllowed("https://anywhere.example.com", []string{"*"}) {
		t.Error("Expected wildcard to allow any origin")
	}
}
