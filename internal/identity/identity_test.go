package identity

import (
	"errors"
	"testing"
)

func TestNewSession_TrimsName(t *testing.T) {
	s, err := NewSession("  maria  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.UserID != "maria" {
		t.Fatalf("UserID = %q, want maria", s.UserID)
	}
	if s.ID == "" || s.StartedAt.IsZero() {
		t.Fatalf("session not fully populated: %+v", s)
	}
}

func TestNewSession_RejectsBlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := NewSession(name); !errors.Is(err, ErrEmptyName) {
			t.Fatalf("NewSession(%q) err = %v, want ErrEmptyName", name, err)
		}
	}
}

func TestNewSession_IDsAreUnique(t *testing.T) {
	a, _ := NewSession("maria")
	b, _ := NewSession("maria")
	if a.ID == b.ID {
		t.Fatal("two sessions share an id")
	}
}
