package sessionid

import (
	"strings"
	"testing"
	"time"

	"github.com/lox/rangetrainer/internal/randutil"
)

func TestNew(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)
	id := New(now, nil)

	if len(id) != 26 {
		t.Errorf("expected 26 characters, got %d", len(id))
	}
	if err := Validate(id); err != nil {
		t.Errorf("generated ID failed validation: %v", err)
	}

	got, err := Time(id)
	if err != nil {
		t.Fatalf("Time: %v", err)
	}
	if !got.Equal(now) {
		t.Errorf("expected timestamp %v, got %v", now, got)
	}
}

func TestNewDeterministicWithSource(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	a := New(now, randutil.New(5))
	b := New(now, randutil.New(5))
	if a != b {
		t.Errorf("same seed and time should give the same ID: %s != %s", a, b)
	}
	if c := New(now, randutil.New(6)); c == a {
		t.Errorf("different seeds should differ, both %s", a)
	}
}

func TestNewUnique(t *testing.T) {
	now := time.Now()
	ids := make(map[string]bool)
	for range 100 {
		id := New(now, nil)
		if ids[id] {
			t.Errorf("duplicate ID generated: %s", id)
		}
		ids[id] = true
	}
}

func TestTimeSorted(t *testing.T) {
	start := time.UnixMilli(1_700_000_000_000)
	var prev string
	for i := range 10 {
		id := New(start.Add(time.Duration(i)*time.Millisecond), nil)
		if prev != "" && strings.Compare(prev, id) >= 0 {
			t.Errorf("IDs not sorted: %s >= %s", prev, id)
		}
		prev = id
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", New(time.Now(), nil), false},
		{"too short", "01h455vb4pex5vsknk084sn02", true},
		{"too long", "01h455vb4pex5vsknk084sn02qq", true},
		{"first char too big", "81h455vb4pex5vsknk084sn02q", true},
		{"invalid character", "01h455vb4pex5vsknk084sn0iq", true},
		{"upper case", "01H455VB4PEX5VSKNK084SN02Q", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
