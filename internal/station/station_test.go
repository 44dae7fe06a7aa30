package station

import "testing"

func testList() []string {
	return []string{"http://a", "http://b", "http://c"}
}

func TestNewEmptyList(t *testing.T) {
	if _, err := New(nil, 0); err != ErrEmptyList {
		t.Errorf("New(nil) error = %v, want ErrEmptyList", err)
	}
}

func TestNewReducesInitialIndex(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		want    int
	}{
		{"in range", 2, 2},
		{"zero", 0, 0},
		{"wraps past end", 7, 1},
		{"exactly length", 3, 0},
		{"negative", -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(testList(), tt.initial)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			got, _ := s.Current()
			if got != tt.want {
				t.Errorf("Current() index = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAdvanceWraps(t *testing.T) {
	s, err := New(testList(), 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	idx, url := s.Advance(+1)
	if idx != 0 || url != "http://a" {
		t.Errorf("Advance(+1) from last = (%d, %q), want (0, %q)", idx, url, "http://a")
	}

	idx, url = s.Advance(-1)
	if idx != 2 || url != "http://c" {
		t.Errorf("Advance(-1) from first = (%d, %q), want (2, %q)", idx, url, "http://c")
	}
}

func TestAdvanceCyclic(t *testing.T) {
	// Advancing N times in either direction returns to the start.
	for _, delta := range []int{+1, -1} {
		for start := 0; start < 3; start++ {
			s, err := New(testList(), start)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			for i := 0; i < s.Len(); i++ {
				s.Advance(delta)
			}
			got, _ := s.Current()
			if got != start {
				t.Errorf("delta %+d: after %d advances index = %d, want %d", delta, s.Len(), got, start)
			}
		}
	}
}

func TestSetAlwaysInRange(t *testing.T) {
	s, err := New(testList(), 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, index := range []int{-7, -1, 0, 1, 2, 3, 100} {
		got, _ := s.Set(index)
		if got < 0 || got >= s.Len() {
			t.Errorf("Set(%d) index = %d, want in [0, %d)", index, got, s.Len())
		}
	}

	if got, _ := s.Set(-1); got != 2 {
		t.Errorf("Set(-1) index = %d, want 2", got)
	}
}

func TestRestoredIndexFromLargerPlaylist(t *testing.T) {
	// A persisted last_index of 7 against a three-station playlist must
	// select station 1, not crash.
	s, err := New(testList(), 7)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	got, url := s.Current()
	if got != 1 || url != "http://b" {
		t.Errorf("Current() = (%d, %q), want (1, %q)", got, url, "http://b")
	}
}

func TestStationsReturnsCopy(t *testing.T) {
	s, err := New(testList(), 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	list := s.Stations()
	list[0] = "mutated"
	if _, url := s.Current(); url != "http://a" {
		t.Errorf("internal list mutated via Stations() copy: %q", url)
	}
}
