package garden

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/virtualgarden/internal/logging"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

var errBoom = errors.New("boom")

// stubClock returns a fixed time. Safe for concurrent use.
type stubClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStubClock() *stubClock {
	return &stubClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *stubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stubClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memStore is an in-memory Store with switchable failures.
type memStore struct {
	mu      sync.Mutex
	seq     int
	gardens []Garden
	plants  map[string]Plant
	patches map[string][]PlantPatch

	findGardensErr  error
	insertGardenErr error
	findPlantsErr   error
	insertPlantErr  error
	deleteErr       error
	updateFailIDs   map[string]bool

	// beforeUpdate, when set, runs at the start of every UpdatePlant call.
	beforeUpdate func(ctx context.Context)
}

func newMemStore() *memStore {
	return &memStore{
		plants:        map[string]Plant{},
		patches:       map[string][]PlantPatch{},
		updateFailIDs: map[string]bool{},
	}
}

func (s *memStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *memStore) FindGardens(ctx context.Context, userID string) ([]Garden, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findGardensErr != nil {
		return nil, s.findGardensErr
	}
	var out []Garden
	for _, g := range s.gardens {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *memStore) InsertGarden(ctx context.Context, g Garden) (Garden, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertGardenErr != nil {
		return Garden{}, s.insertGardenErr
	}
	g.ID = s.nextID("garden")
	g.CreatedAt = time.Now()
	s.gardens = append(s.gardens, g)
	return g, nil
}

func (s *memStore) FindPlants(ctx context.Context, gardenID string) ([]Plant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findPlantsErr != nil {
		return nil, s.findPlantsErr
	}
	var out []Plant
	for _, p := range s.plants {
		if p.GardenID == gardenID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) InsertPlant(ctx context.Context, p Plant) (Plant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertPlantErr != nil {
		return Plant{}, s.insertPlantErr
	}
	p.ID = s.nextID("plant")
	s.plants[p.ID] = p
	return p, nil
}

func (s *memStore) UpdatePlant(ctx context.Context, id string, patch PlantPatch) error {
	if s.beforeUpdate != nil {
		s.beforeUpdate(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateFailIDs[id] {
		return errBoom
	}
	p, ok := s.plants[id]
	if !ok {
		return errors.New("no such plant")
	}
	if patch.GrowthStage != nil {
		p.GrowthStage = *patch.GrowthStage
	}
	if patch.WaterLevel != nil {
		p.WaterLevel = *patch.WaterLevel
	}
	if patch.Happiness != nil {
		p.Happiness = *patch.Happiness
	}
	if patch.LastWatered != nil {
		p.LastWatered = *patch.LastWatered
	}
	if patch.LastVisited != nil {
		p.LastVisited = *patch.LastVisited
	}
	s.plants[id] = p
	s.patches[id] = append(s.patches[id], patch)
	return nil
}

func (s *memStore) DeletePlant(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.plants, id)
	return nil
}

func (s *memStore) stored(id string) (Plant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plants[id]
	return p, ok
}

func (s *memStore) patchCount(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.patches[id])
}

func (s *memStore) put(p Plant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plants[p.ID] = p
}
