package randx

import "testing"

func TestRoomIDFormat(t *testing.T) {
	for i := 0; i < 200; i++ {
		id, err := RoomID()
		if err != nil {
			t.Fatalf("RoomID: %v", err)
		}
		if !IsValidRoomID(id) {
			t.Fatalf("generated id %q is not valid", id)
		}
	}
}

func TestIsValidRoomID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"1000", true},
		{"9999", true},
		{"0999", false},
		{"999", false},
		{"10000", false},
		{"12a4", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidRoomID(tt.id); got != tt.want {
			t.Errorf("IsValidRoomID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestConnectionIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := ConnectionID()
		if id == "" {
			t.Fatal("empty connection id")
		}
		if seen[id] {
			t.Fatalf("duplicate connection id %q", id)
		}
		seen[id] = true
	}
}
