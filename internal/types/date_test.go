package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONFormat(t *testing.T) {
	d := NewDate(2024, time.February, 1)

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2024-02-01"` {
		t.Fatalf("marshal=%s, want \"2024-02-01\"", raw)
	}

	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("roundtrip changed value: %v vs %v", back, d)
	}

	for _, bad := range []string{`"01.02.2024"`, `"2024-2-1"`, `42`, `""`} {
		if err := json.Unmarshal([]byte(bad), &back); err == nil {
			t.Fatalf("expected %s to fail", bad)
		}
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, 3, 1, 13, 45, 0, 0, time.FixedZone("X", 3600))); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	// Time-of-day and zone are dropped on scan.
	if d.String() != "2024-03-01" {
		t.Fatalf("scan time: got %s", d)
	}

	if err := d.Scan("2024-04-02"); err != nil || d.String() != "2024-04-02" {
		t.Fatalf("scan string: %s err=%v", d, err)
	}
	if err := d.Scan(42); err == nil {
		t.Fatalf("expected scan of int to fail")
	}
}
