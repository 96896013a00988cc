// Package visual derives how a plant should be displayed from its stats.
// Everything here is a pure function of the plant; callers recompute on
// every render.
package visual

import (
	"github.com/dmitrijs2005/virtualgarden/internal/garden"
)

// Display thresholds.
const (
	HealthyAbove  = 30
	ThirstyBelow  = 30
	ThrivingAbove = 80
	ThrivingStage = 3
)

// Wilted replaces the per-kind symbol of a grown plant that is not healthy.
const Wilted = "🥀"

const defaultSymbol = "🌱"

var symbols = map[garden.Kind][6]string{
	garden.KindFlower:    {"🌱", "🌿", "☘️", "🌸", "🌺", "🌻"},
	garden.KindTree:      {"🌱", "🌿", "🪴", "🌳", "🌲", "🌴"},
	garden.KindSucculent: {"🌱", "🌿", "🪴", "🌵", "🌵", "🌵"},
	garden.KindMushroom:  {"🌱", "🌿", "🍄", "🍄", "🍄", "🍄"},
}

var stageNames = [6]string{"Seed", "Sprout", "Seedling", "Young", "Mature", "Blooming"}

var kindNames = map[garden.Kind]string{
	garden.KindFlower:    "Flower",
	garden.KindTree:      "Tree",
	garden.KindSucculent: "Succulent",
	garden.KindMushroom:  "Mushroom",
}

// Stage is the display descriptor of a plant.
type Stage struct {
	Symbol    string
	Size      float64 // relative size, in rem
	Healthy   bool
	Thirsty   bool
	Thriving  bool
	StageName string
	KindName  string
}

// Project computes the display descriptor for the given stats. The growth
// stage is clamped to its valid range first.
func Project(kind garden.Kind, growthStage, waterLevel, happiness int) Stage {
	stage := max(garden.MinGrowthStage, min(garden.MaxGrowthStage, growthStage))
	healthy := waterLevel > HealthyAbove && happiness > HealthyAbove

	return Stage{
		Symbol:    symbol(kind, stage, healthy),
		Size:      2.0 + 0.5*float64(stage),
		Healthy:   healthy,
		Thirsty:   waterLevel < ThirstyBelow,
		Thriving:  happiness > ThrivingAbove && healthy && stage >= ThrivingStage,
		StageName: stageNames[stage],
		KindName:  KindName(kind),
	}
}

// ProjectPlant is Project applied to p.
func ProjectPlant(p garden.Plant) Stage {
	return Project(p.Kind, p.GrowthStage, p.WaterLevel, p.Happiness)
}

// KindName returns the human name of kind, or the raw kind when unknown.
func KindName(kind garden.Kind) string {
	if n, ok := kindNames[kind]; ok {
		return n
	}
	return string(kind)
}

func symbol(kind garden.Kind, stage int, healthy bool) string {
	if stage > 0 && !healthy {
		return Wilted
	}
	table, ok := symbols[kind]
	if !ok {
		return defaultSymbol
	}
	return table[stage]
}
