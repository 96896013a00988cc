package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/virtualgarden/internal/garden"
	"github.com/dmitrijs2005/virtualgarden/internal/logging"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

var errDown = errors.New("store down")

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

// fakeAuth keeps one session in memory and fires listeners like AuthService.
type fakeAuth struct {
	mu        sync.Mutex
	session   *garden.Session
	listeners map[int]func(*garden.Session)
	next      int

	signUpErr error
	signInErr error

	signUps []string
}

func newFakeAuth(s *garden.Session) *fakeAuth {
	return &fakeAuth{session: s, listeners: map[int]func(*garden.Session){}}
}

func (f *fakeAuth) CurrentSession(ctx context.Context) (*garden.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session, nil
}

func (f *fakeAuth) OnSessionChange(fn func(*garden.Session)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.next
	f.next++
	f.listeners[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners, id)
	}
}

func (f *fakeAuth) fire(s *garden.Session) {
	f.mu.Lock()
	f.session = s
	var fns []func(*garden.Session)
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(s)
	}
}

func (f *fakeAuth) SignUp(ctx context.Context, email string, password []byte) error {
	f.signUps = append(f.signUps, email)
	return f.signUpErr
}

func (f *fakeAuth) SignIn(ctx context.Context, email string, password []byte) (*garden.Session, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	s := &garden.Session{UserID: "u-" + email, Email: email, AccessToken: "A", RefreshToken: "R"}
	f.fire(s)
	return s, nil
}

func (f *fakeAuth) SignOut(ctx context.Context) error {
	f.fire(nil)
	return nil
}

// sliceStore is an ordered in-memory garden.Store.
type sliceStore struct {
	mu      sync.Mutex
	seq     int
	gardens []garden.Garden
	plants  []garden.Plant
	updates int

	findGardensErr error
	failWrites     bool
}

func (s *sliceStore) FindGardens(ctx context.Context, userID string) ([]garden.Garden, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findGardensErr != nil {
		return nil, s.findGardensErr
	}
	var out []garden.Garden
	for _, g := range s.gardens {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *sliceStore) InsertGarden(ctx context.Context, g garden.Garden) (garden.Garden, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = "g-" + g.UserID
	s.gardens = append(s.gardens, g)
	return g, nil
}

func (s *sliceStore) FindPlants(ctx context.Context, gardenID string) ([]garden.Plant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []garden.Plant
	for _, p := range s.plants {
		if p.GardenID == gardenID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *sliceStore) InsertPlant(ctx context.Context, p garden.Plant) (garden.Plant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return garden.Plant{}, errDown
	}
	s.seq++
	p.ID = fmt.Sprintf("new%05d-0000", s.seq)
	s.plants = append(s.plants, p)
	return p, nil
}

func (s *sliceStore) UpdatePlant(ctx context.Context, id string, patch garden.PlantPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return errDown
	}
	s.updates++
	return nil
}

func (s *sliceStore) DeletePlant(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return errDown
	}
	for i, p := range s.plants {
		if p.ID == id {
			s.plants = append(s.plants[:i], s.plants[i+1:]...)
			return nil
		}
	}
	return errors.New("no such plant")
}

func seedPlant(id, gardenID string, kind garden.Kind, stage, water, happy int) garden.Plant {
	return garden.Plant{
		ID: id, GardenID: gardenID, Kind: kind,
		PositionX: 20, PositionY: 40,
		GrowthStage: stage, WaterLevel: water, Happiness: happy,
		LastWatered: testNow, LastVisited: testNow, CreatedAt: testNow.Add(-72 * time.Hour),
	}
}

var ann = &garden.Session{UserID: "u1", Email: "ann@example.com", AccessToken: "A", RefreshToken: "R"}

// newTestApp returns a started App writing to the returned buffer.
func newTestApp(t *testing.T, auth *fakeAuth, store *sliceStore) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	a := newApp(auth, store, fixedClock{testNow}, nopLogger{}, strings.NewReader(""), out)
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a, out
}

func stubInputs(t *testing.T, email string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}
