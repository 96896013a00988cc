package garden

import (
	"fmt"
	"time"
)

// Kind is the species of a plant.
type Kind string

const (
	KindFlower    Kind = "flower"
	KindTree      Kind = "tree"
	KindSucculent Kind = "succulent"
	KindMushroom  Kind = "mushroom"
)

// Kinds lists every plantable kind in menu order.
var Kinds = []Kind{KindFlower, KindTree, KindSucculent, KindMushroom}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool {
	for _, v := range Kinds {
		if v == k {
			return true
		}
	}
	return false
}

// ParseKind converts user input into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Simulation bounds.
const (
	MinLevel       = 0
	MaxLevel       = 100
	MinGrowthStage = 0
	MaxGrowthStage = 5
	MinPosition    = 10
	MaxPosition    = 90
)

// DefaultGardenName is given to gardens created on first sign-in.
const DefaultGardenName = "My Garden"

// Garden is the per-user container of plants.
type Garden struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Plant is a single decaying/growing entity in a garden. Position is a
// percentage of the garden area and never changes after planting.
type Plant struct {
	ID          string    `json:"id"`
	GardenID    string    `json:"garden_id"`
	Kind        Kind      `json:"type"`
	PositionX   int       `json:"position_x"`
	PositionY   int       `json:"position_y"`
	GrowthStage int       `json:"growth_stage"`
	WaterLevel  int       `json:"water_level"`
	Happiness   int       `json:"happiness"`
	LastWatered time.Time `json:"last_watered"`
	LastVisited time.Time `json:"last_visited"`
	CreatedAt   time.Time `json:"created_at"`
}

// PlantPatch lists the mutable plant fields; nil fields are left unchanged.
type PlantPatch struct {
	GrowthStage *int       `json:"growth_stage,omitempty"`
	WaterLevel  *int       `json:"water_level,omitempty"`
	Happiness   *int       `json:"happiness,omitempty"`
	LastWatered *time.Time `json:"last_watered,omitempty"`
	LastVisited *time.Time `json:"last_visited,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p PlantPatch) Empty() bool {
	return p.GrowthStage == nil && p.WaterLevel == nil && p.Happiness == nil &&
		p.LastWatered == nil && p.LastVisited == nil
}

// Session is an authenticated identity as seen by the client.
type Session struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
}
