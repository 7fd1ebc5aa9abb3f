package middleware

import (
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"550E8400-E29B-41D4-A716-446655440000", true}, // case-insensitive
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"  aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa  ", true}, // trimmed
		{"not-an-id", false},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false}, // 31 chars
		{"", false},
	}
	for _, c := range cases {
		if got := validReqID(c.id); got != c.want {
			t.Fatalf("validReqID(%q) = %v, want %v", c.id, got, c.want)
		}
	}
}

func TestParseAxRequestAt(t *testing.T) {
	want := time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		raw  string
		want time.Time
	}{
		{"1757066400", want},                  // epoch seconds
		{"1757066400000", want},               // epoch milliseconds
		{"2025-09-05T10:00:00Z", want},        // RFC3339 UTC
		{"2025-09-05T17:00:00+07:00", want},   // RFC3339 with offset
		{"2025-09-05T10:00:00.123Z", want.Add(123 * time.Millisecond)},
	}
	for _, c := range cases {
		got, err := parseAxRequestAt(c.raw)
		if err != nil {
			t.Fatalf("parseAxRequestAt(%q): %v", c.raw, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("parseAxRequestAt(%q) = %v, want %v", c.raw, got, c.want)
		}
	}

	// Naive timestamps and garbage are rejected.
	for _, raw := range []string{"", "2025-09-05T10:00:00", "2025-09-05 10:00:00", "yesterday"} {
		if _, err := parseAxRequestAt(raw); err == nil {
			t.Fatalf("parseAxRequestAt(%q): expected error", raw)
		}
	}
}

func TestBuildKey(t *testing.T) {
	got := buildKey("POST", "/api/v1/loans", "user-1", "550e8400-e29b-41d4-a716-446655440000")
	want := "idemp:ax:post:/api/v1/loans:user-1:550e8400-e29b-41d4-a716-446655440000"
	if got != want {
		t.Fatalf("buildKey = %q, want %q", got, want)
	}
}

func TestBodyHash(t *testing.T) {
	a := bodyHash([]byte(`{"amount":100}`))
	b := bodyHash([]byte(`{"amount":100}`))
	c := bodyHash([]byte(`{"amount":200}`))
	if a != b {
		t.Fatal("hash not deterministic")
	}
	if a == c {
		t.Fatal("different bodies must not collide")
	}
	if len(a) != 64 {
		t.Fatalf("hex sha256 length = %d", len(a))
	}
}
