package garden

import (
	"math"
	"time"
)

// Decay and care rates.
const (
	WaterDrainPerHour     = 2.0
	HappinessDrainPerHour = 1.0
	WaterPerWatering      = 30
	HappinessPerCare      = 20
	HealthGate            = 50
	DaysPerGrowthStage    = 2.0
)

// Tick applies the time-based decay and growth rule to every plant as of now
// and returns the results. The input slice is not modified.
//
// Water drains from the last watering, happiness from the last visit. The
// growth stage is recomputed from the plant's age while water and happiness
// (as they stood before this tick) are both above the health gate; it never
// moves backwards. Every returned plant is marked visited at now.
func Tick(plants []Plant, now time.Time) []Plant {
	out := make([]Plant, len(plants))
	for i, p := range plants {
		out[i] = tickPlant(p, now)
	}
	return out
}

func tickPlant(p Plant, now time.Time) Plant {
	hoursSinceVisit := now.Sub(p.LastVisited).Hours()
	hoursSinceWater := now.Sub(p.LastWatered).Hours()

	next := p
	next.WaterLevel = roundLevel(float64(p.WaterLevel) - hoursSinceWater*WaterDrainPerHour)
	next.Happiness = roundLevel(float64(p.Happiness) - hoursSinceVisit*HappinessDrainPerHour)
	next.GrowthStage = clampStage(p.GrowthStage)

	if p.WaterLevel > HealthGate && p.Happiness > HealthGate && next.GrowthStage < MaxGrowthStage {
		daysSincePlanted := now.Sub(p.CreatedAt).Hours() / 24
		byAge := clampStage(int(math.Floor(daysSincePlanted / DaysPerGrowthStage)))
		if byAge > next.GrowthStage {
			next.GrowthStage = byAge
		}
	}

	next.LastVisited = now
	return next
}

// Water tops up the plant's water by WaterPerWatering (capped at MaxLevel)
// and stamps LastWatered, even when the plant was already full.
func Water(p Plant, now time.Time) Plant {
	p.WaterLevel = min(MaxLevel, p.WaterLevel+WaterPerWatering)
	p.LastWatered = now
	return p
}

// Care raises happiness by HappinessPerCare, capped at MaxLevel.
func Care(p Plant) Plant {
	p.Happiness = min(MaxLevel, p.Happiness+HappinessPerCare)
	return p
}

// NewPlant builds an unsaved seedling of kind in gardenID. random must return
// values in [0, 1); it places the plant uniformly in the garden area.
func NewPlant(gardenID string, kind Kind, random func() float64, now time.Time) Plant {
	return Plant{
		GardenID:    gardenID,
		Kind:        kind,
		PositionX:   randomPosition(random),
		PositionY:   randomPosition(random),
		GrowthStage: MinGrowthStage,
		WaterLevel:  MaxLevel,
		Happiness:   MaxLevel,
		LastWatered: now,
		LastVisited: now,
		CreatedAt:   now,
	}
}

func randomPosition(random func() float64) int {
	span := float64(MaxPosition - MinPosition)
	pos := int(math.Round(random()*span + MinPosition))
	return max(MinPosition, min(MaxPosition, pos))
}

func roundLevel(v float64) int {
	if math.IsNaN(v) {
		return MinLevel
	}
	v = math.Max(MinLevel, math.Min(MaxLevel, v))
	return int(math.Round(v))
}

func clampStage(s int) int {
	return max(MinGrowthStage, min(MaxGrowthStage, s))
}
