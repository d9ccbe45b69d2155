package pagination

import (
	"testing"
	"time"
)

func TestCursorRoundTrip(t *testing.T) {
	cursor := &Cursor{Date: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)}

	encoded := cursor.Encode()
	if encoded == "" {
		t.Fatal("Encode returned empty string")
	}

	decoded, err := DecodeCursor(encoded)
	if err != nil {
		t.Fatalf("DecodeCursor: %v", err)
	}
	if !decoded.Date.Equal(cursor.Date) {
		t.Errorf("decoded date = %v, want %v", decoded.Date, cursor.Date)
	}
}

func TestDecodeCursor(t *testing.T) {
	// Empty cursor is not an error
	decoded, err := DecodeCursor("")
	if err != nil || decoded != nil {
		t.Errorf("DecodeCursor(\"\") = %v, %v; want nil, nil", decoded, err)
	}

	// Garbage input fails
	if _, err := DecodeCursor("not-base64!"); err == nil {
		t.Error("DecodeCursor accepted invalid input")
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{-5, DefaultLimit},
		{50, 50},
		{MaxLimit, MaxLimit},
		{MaxLimit + 1, MaxLimit},
	}
	for _, tt := range tests {
		if got := NormalizeLimit(tt.in); got != tt.want {
			t.Errorf("NormalizeLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
