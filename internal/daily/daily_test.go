package daily

import (
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)
	if got := DateKey(d); got != "2026-03-01" {
		t.Fatalf("expected UTC date, got %q", got)
	}
}

func TestSeedStablePerDay(t *testing.T) {
	morning := time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	next := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)

	if Seed(morning, "salt") != Seed(evening, "salt") {
		t.Fatal("expected same seed within a day")
	}
	if Seed(morning, "salt") == Seed(next, "salt") {
		t.Fatal("expected different seed on the next day")
	}
	if Seed(morning, "salt") == Seed(morning, "other") {
		t.Fatal("expected salt to change the seed")
	}
}
