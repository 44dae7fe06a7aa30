package player

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

// fakeSession records terminate calls and reports a fixed liveness.
type fakeSession struct {
	running    bool
	terminated bool
	journal    *[]string
}

func (s *fakeSession) Terminate() error {
	s.terminated = true
	s.running = false
	if s.journal != nil {
		*s.journal = append(*s.journal, "terminate")
	}
	return nil
}

func (s *fakeSession) Running() bool {
	return s.running
}

type fakeBackend struct {
	journal  *[]string
	sessions []*fakeSession
	startErr error
	urls     []string
}

func (b *fakeBackend) Start(url string) (Session, error) {
	if b.journal != nil {
		*b.journal = append(*b.journal, "start")
	}
	if b.startErr != nil {
		return nil, b.startErr
	}
	b.urls = append(b.urls, url)
	s := &fakeSession{running: true, journal: b.journal}
	b.sessions = append(b.sessions, s)
	return s, nil
}

type fakeAnnouncer struct {
	numbers []int
}

func (a *fakeAnnouncer) AnnounceStation(number int) {
	a.numbers = append(a.numbers, number)
}

type fakeMixer struct {
	levels []int
	err    error
}

func (m *fakeMixer) Set(percent int) error {
	m.levels = append(m.levels, percent)
	return m.err
}

type fakeSaver struct {
	indexes []int
	err     error
}

func (s *fakeSaver) SaveIndex(index int) error {
	s.indexes = append(s.indexes, index)
	return s.err
}

func newTestController(backend Backend, announcer Announcer, mixer *fakeMixer, saver *fakeSaver, level int) *Controller {
	c := NewController(backend, announcer, mixer, saver, level, zerolog.Nop())
	c.grace = 0
	return c
}

func TestPlayStartsSession(t *testing.T) {
	backend := &fakeBackend{}
	announcer := &fakeAnnouncer{}
	saver := &fakeSaver{}
	c := newTestController(backend, announcer, &fakeMixer{}, saver, 80)

	if err := c.Play(1, "http://b"); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if len(backend.urls) != 1 || backend.urls[0] != "http://b" {
		t.Errorf("started urls = %v, want [http://b]", backend.urls)
	}
	if len(announcer.numbers) != 1 || announcer.numbers[0] != 2 {
		t.Errorf("announced = %v, want one announcement of the 1-based number 2", announcer.numbers)
	}
	if len(saver.indexes) != 1 || saver.indexes[0] != 1 {
		t.Errorf("saved = %v, want exactly one save of index 1", saver.indexes)
	}
}

func TestPlayReplacesRunningSession(t *testing.T) {
	var journal []string
	backend := &fakeBackend{journal: &journal}
	c := newTestController(backend, &fakeAnnouncer{}, &fakeMixer{}, &fakeSaver{}, 80)

	if err := c.Play(0, "http://a"); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if err := c.Play(1, "http://b"); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	want := []string{"start", "terminate", "start"}
	if len(journal) != len(want) {
		t.Fatalf("journal = %v, want %v", journal, want)
	}
	for i := range want {
		if journal[i] != want[i] {
			t.Fatalf("journal = %v, want %v (old session must stop before new one starts)", journal, want)
		}
	}
}

func TestPlayDeadSessionNotTerminated(t *testing.T) {
	var journal []string
	backend := &fakeBackend{journal: &journal}
	c := newTestController(backend, &fakeAnnouncer{}, &fakeMixer{}, &fakeSaver{}, 80)

	if err := c.Play(0, "http://a"); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	// Player exited on its own; noticed lazily at the next play.
	backend.sessions[0].running = false

	if err := c.Play(1, "http://b"); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if backend.sessions[0].terminated {
		t.Error("terminated a session that was already dead")
	}
}

func TestPlaySaveFailureIsNotFatal(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	c := newTestController(&fakeBackend{}, &fakeAnnouncer{}, &fakeMixer{}, saver, 80)

	if err := c.Play(0, "http://a"); err != nil {
		t.Errorf("Play() error = %v, want nil despite save failure", err)
	}
}

func TestPlayStartFailurePropagates(t *testing.T) {
	backend := &fakeBackend{startErr: errors.New("cvlc not found")}
	saver := &fakeSaver{}
	announcer := &fakeAnnouncer{}
	c := newTestController(backend, announcer, &fakeMixer{}, saver, 80)

	if err := c.Play(0, "http://a"); err == nil {
		t.Fatal("Play() error = nil, want start failure")
	}
	if len(saver.indexes) != 0 {
		t.Errorf("saved = %v, want no save when start fails", saver.indexes)
	}
	if len(announcer.numbers) != 0 {
		t.Errorf("announced = %v, want no announcement when start fails", announcer.numbers)
	}
}

func TestStopIdempotent(t *testing.T) {
	backend := &fakeBackend{}
	c := newTestController(backend, &fakeAnnouncer{}, &fakeMixer{}, &fakeSaver{}, 80)

	// No session yet.
	c.Stop()

	if err := c.Play(0, "http://a"); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	c.Stop()
	c.Stop()

	if !backend.sessions[0].terminated {
		t.Error("Stop() did not terminate the live session")
	}
}

func TestAdjustVolumeClamps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"clamped high", 98, +5, 100},
		{"clamped low", 2, -5, 0},
		{"normal up", 50, +5, 55},
		{"normal down", 50, -5, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mixer := &fakeMixer{}
			c := newTestController(&fakeBackend{}, &fakeAnnouncer{}, mixer, &fakeSaver{}, tt.start)

			got := c.AdjustVolume(tt.delta)
			if got != tt.want {
				t.Errorf("AdjustVolume(%+d) = %d, want %d", tt.delta, got, tt.want)
			}
			if len(mixer.levels) != 1 || mixer.levels[0] != tt.want {
				t.Errorf("mixer received %v, want [%d]", mixer.levels, tt.want)
			}
		})
	}
}

func TestAdjustVolumeWithoutSession(t *testing.T) {
	mixer := &fakeMixer{}
	c := newTestController(&fakeBackend{}, &fakeAnnouncer{}, mixer, &fakeSaver{}, 40)

	if got := c.AdjustVolume(+5); got != 45 {
		t.Errorf("AdjustVolume(+5) = %d, want 45 with no active session", got)
	}
}

func TestMixerFailureKeepsLevel(t *testing.T) {
	mixer := &fakeMixer{err: errors.New("no such control")}
	c := newTestController(&fakeBackend{}, &fakeAnnouncer{}, mixer, &fakeSaver{}, 40)

	if got := c.AdjustVolume(+5); got != 45 {
		t.Errorf("AdjustVolume(+5) = %d, want 45 even when amixer fails", got)
	}
	if c.Volume() != 45 {
		t.Errorf("Volume() = %d, want 45", c.Volume())
	}
}
