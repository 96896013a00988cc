package garden

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/virtualgarden/internal/logging"
)

const (
	// DefaultTickInterval is how often a running Engine applies Tick.
	DefaultTickInterval = 60 * time.Second

	// StoreTimeout bounds every single store call made by the Engine.
	StoreTimeout = 10 * time.Second
)

// Engine owns the working set of plants for one garden. User actions update
// the working set immediately and are then written to the store; store
// failures are logged and returned but never rolled back in memory.
//
// Engine is safe for concurrent use by the ticker and user commands.
type Engine struct {
	store  Store
	clock  Clock
	logger logging.Logger
	random func() float64

	mu       sync.Mutex
	gardenID string
	plants   []Plant
}

// NewEngine returns an Engine with an empty working set.
func NewEngine(store Store, clock Clock, logger logging.Logger) *Engine {
	return &Engine{
		store:  store,
		clock:  clock,
		logger: logger.With("module", "engine"),
		random: rand.Float64,
	}
}

// GardenID returns the garden the working set belongs to.
func (e *Engine) GardenID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gardenID
}

// Plants returns a copy of the working set.
func (e *Engine) Plants() []Plant {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.plants)
}

// Get returns the plant with the given id from the working set.
func (e *Engine) Get(id string) (Plant, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.indexOf(id)
	if i < 0 {
		return Plant{}, ErrPlantNotFound
	}
	return e.plants[i], nil
}

// Load fetches every plant of gardenID and makes them the working set.
// On failure the previous working set is kept.
func (e *Engine) Load(ctx context.Context, gardenID string) ([]Plant, error) {
	sctx, cancel := context.WithTimeout(ctx, StoreTimeout)
	defer cancel()

	plants, err := e.store.FindPlants(sctx, gardenID)
	if err != nil {
		e.logger.Error(ctx, "error loading plants", "garden_id", gardenID, "error", err)
		return nil, &PersistenceError{Op: "load plants", Err: err}
	}

	e.mu.Lock()
	e.gardenID = gardenID
	e.plants = slices.Clone(plants)
	e.mu.Unlock()

	e.logger.Info(ctx, "plants loaded", "garden_id", gardenID, "count", len(plants))
	return plants, nil
}

// Reset forgets the garden and its working set, e.g. after sign-out.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gardenID = ""
	e.plants = nil
}

// RunTick applies Tick to the working set and writes each plant back with
// its own update. A failed update is logged and does not stop the others;
// that plant stays diverged from the store until a later tick succeeds.
//
// Once started, the writes are not cancelled with ctx; each one is still
// bounded by StoreTimeout.
func (e *Engine) RunTick(ctx context.Context) []Plant {
	now := e.clock.Now()
	wctx := context.WithoutCancel(ctx)

	e.mu.Lock()
	e.plants = Tick(e.plants, now)
	updated := slices.Clone(e.plants)
	e.mu.Unlock()

	failed := 0
	for _, p := range updated {
		patch := PlantPatch{
			WaterLevel:  &p.WaterLevel,
			Happiness:   &p.Happiness,
			GrowthStage: &p.GrowthStage,
			LastVisited: &now,
		}
		if err := e.update(wctx, p.ID, patch); err != nil {
			failed++
			e.logger.Error(ctx, "error updating plant stats", "plant_id", p.ID, "error", err)
		}
	}

	e.logger.Debug(ctx, "tick", "plants", len(updated), "failed", failed)
	return updated
}

// Plant creates a new plant of kind in the loaded garden and adds the stored
// record to the working set.
func (e *Engine) Plant(ctx context.Context, kind Kind) (Plant, error) {
	if !kind.Valid() {
		return Plant{}, ErrUnknownKind
	}
	gardenID := e.GardenID()
	if gardenID == "" {
		return Plant{}, ErrNoGarden
	}

	p := NewPlant(gardenID, kind, e.random, e.clock.Now())

	sctx, cancel := context.WithTimeout(ctx, StoreTimeout)
	defer cancel()

	stored, err := e.store.InsertPlant(sctx, p)
	if err != nil {
		e.logger.Error(ctx, "error adding plant", "kind", kind, "error", err)
		return Plant{}, &PersistenceError{Op: "insert plant", Err: err}
	}

	e.mu.Lock()
	e.plants = append(e.plants, stored)
	e.mu.Unlock()

	e.logger.Info(ctx, "plant added", "plant_id", stored.ID, "kind", kind)
	return stored, nil
}

// Water waters the plant and persists the new water level and timestamp.
func (e *Engine) Water(ctx context.Context, id string) (Plant, error) {
	now := e.clock.Now()
	p, err := e.apply(id, func(p Plant) Plant { return Water(p, now) })
	if err != nil {
		return Plant{}, err
	}

	patch := PlantPatch{WaterLevel: &p.WaterLevel, LastWatered: &p.LastWatered}
	if err := e.update(ctx, id, patch); err != nil {
		e.logger.Error(ctx, "error watering plant", "plant_id", id, "error", err)
		return p, &PersistenceError{Op: "water plant", Err: err}
	}
	return p, nil
}

// Care raises the plant's happiness and persists it.
func (e *Engine) Care(ctx context.Context, id string) (Plant, error) {
	p, err := e.apply(id, Care)
	if err != nil {
		return Plant{}, err
	}

	patch := PlantPatch{Happiness: &p.Happiness}
	if err := e.update(ctx, id, patch); err != nil {
		e.logger.Error(ctx, "error caring for plant", "plant_id", id, "error", err)
		return p, &PersistenceError{Op: "care plant", Err: err}
	}
	return p, nil
}

// Remove deletes the plant from the store and then from the working set.
// If the delete fails the plant stays.
func (e *Engine) Remove(ctx context.Context, id string) error {
	if _, err := e.Get(id); err != nil {
		return err
	}

	sctx, cancel := context.WithTimeout(ctx, StoreTimeout)
	defer cancel()

	if err := e.store.DeletePlant(sctx, id); err != nil {
		e.logger.Error(ctx, "error removing plant", "plant_id", id, "error", err)
		return &PersistenceError{Op: "delete plant", Err: err}
	}

	e.mu.Lock()
	if i := e.indexOf(id); i >= 0 {
		e.plants = slices.Delete(e.plants, i, i+1)
	}
	e.mu.Unlock()

	e.logger.Info(ctx, "plant removed", "plant_id", id)
	return nil
}

// Start runs RunTick every interval until ctx is done or the returned stop
// function is called. stop lets an in-progress tick finish its writes, waits
// for it and may be called more than once.
func (e *Engine) Start(ctx context.Context, interval time.Duration) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				e.RunTick(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

func (e *Engine) update(ctx context.Context, id string, patch PlantPatch) error {
	ctx, cancel := context.WithTimeout(ctx, StoreTimeout)
	defer cancel()
	return e.store.UpdatePlant(ctx, id, patch)
}

func (e *Engine) apply(id string, fn func(Plant) Plant) (Plant, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.indexOf(id)
	if i < 0 {
		return Plant{}, ErrPlantNotFound
	}
	e.plants[i] = fn(e.plants[i])
	return e.plants[i], nil
}

// indexOf must be called with mu held.
func (e *Engine) indexOf(id string) int {
	return slices.IndexFunc(e.plants, func(p Plant) bool { return p.ID == id })
}
