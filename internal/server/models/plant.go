package models

import "time"

type Plant struct {
	ID          string
	GardenID    string
	Type        string
	PositionX   int
	PositionY   int
	GrowthStage int
	WaterLevel  int
	Happiness   int
	LastWatered time.Time
	LastVisited time.Time
	CreatedAt   time.Time
}

// PlantPatch is a partial plant update; nil fields are left unchanged.
type PlantPatch struct {
	GrowthStage *int
	WaterLevel  *int
	Happiness   *int
	LastWatered *time.Time
	LastVisited *time.Time
}

func (p PlantPatch) Empty() bool {
	return p.GrowthStage == nil && p.WaterLevel == nil && p.Happiness == nil &&
		p.LastWatered == nil && p.LastVisited == nil
}
