package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/virtualgarden/internal/garden"
	pb "github.com/dmitrijs2005/virtualgarden/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var _ garden.Store = (*GRPCClient)(nil)

func (c *GRPCClient) FindGardens(ctx context.Context, userID string) ([]garden.Garden, error) {
	resp, err := c.client.FindGardens(ctx, &pb.FindGardensRequest{UserId: userID})
	if err != nil {
		return nil, c.mapError(err)
	}

	gardens := make([]garden.Garden, 0, len(resp.Gardens))
	for _, g := range resp.Gardens {
		gardens = append(gardens, gardenFromPB(g))
	}
	return gardens, nil
}

func (c *GRPCClient) InsertGarden(ctx context.Context, g garden.Garden) (garden.Garden, error) {
	resp, err := c.client.InsertGarden(ctx, &pb.InsertGardenRequest{Name: g.Name})
	if err != nil {
		return garden.Garden{}, c.mapError(err)
	}
	return gardenFromPB(resp.Garden), nil
}

func (c *GRPCClient) FindPlants(ctx context.Context, gardenID string) ([]garden.Plant, error) {
	resp, err := c.client.FindPlants(ctx, &pb.FindPlantsRequest{GardenId: gardenID})
	if err != nil {
		return nil, c.mapError(err)
	}

	plants := make([]garden.Plant, 0, len(resp.Plants))
	for _, p := range resp.Plants {
		plants = append(plants, plantFromPB(p))
	}
	return plants, nil
}

func (c *GRPCClient) InsertPlant(ctx context.Context, p garden.Plant) (garden.Plant, error) {
	resp, err := c.client.InsertPlant(ctx, &pb.InsertPlantRequest{Plant: plantToPB(p)})
	if err != nil {
		return garden.Plant{}, c.mapError(err)
	}
	return plantFromPB(resp.Plant), nil
}

func (c *GRPCClient) UpdatePlant(ctx context.Context, id string, patch garden.PlantPatch) error {
	req := &pb.UpdatePlantRequest{
		Id:          id,
		GrowthStage: int32Value(patch.GrowthStage),
		WaterLevel:  int32Value(patch.WaterLevel),
		Happiness:   int32Value(patch.Happiness),
		LastWatered: timestamp(patch.LastWatered),
		LastVisited: timestamp(patch.LastVisited),
	}
	_, err := c.client.UpdatePlant(ctx, req)
	return c.mapError(err)
}

func (c *GRPCClient) DeletePlant(ctx context.Context, id string) error {
	_, err := c.client.DeletePlant(ctx, &pb.DeletePlantRequest{Id: id})
	return c.mapError(err)
}

func gardenFromPB(g *pb.Garden) garden.Garden {
	if g == nil {
		return garden.Garden{}
	}
	return garden.Garden{ID: g.Id, UserID: g.UserId, Name: g.Name, CreatedAt: asTime(g.GetCreatedAt())}
}

func plantFromPB(p *pb.Plant) garden.Plant {
	if p == nil {
		return garden.Plant{}
	}
	return garden.Plant{
		ID:          p.Id,
		GardenID:    p.GardenId,
		Kind:        garden.Kind(p.Type),
		PositionX:   int(p.PositionX),
		PositionY:   int(p.PositionY),
		GrowthStage: int(p.GrowthStage),
		WaterLevel:  int(p.WaterLevel),
		Happiness:   int(p.Happiness),
		LastWatered: asTime(p.GetLastWatered()),
		LastVisited: asTime(p.GetLastVisited()),
		CreatedAt:   asTime(p.GetCreatedAt()),
	}
}

func plantToPB(p garden.Plant) *pb.Plant {
	return &pb.Plant{
		Id:          p.ID,
		GardenId:    p.GardenID,
		Type:        string(p.Kind),
		PositionX:   int32(p.PositionX),
		PositionY:   int32(p.PositionY),
		GrowthStage: int32(p.GrowthStage),
		WaterLevel:  int32(p.WaterLevel),
		Happiness:   int32(p.Happiness),
		LastWatered: timestamppb.New(p.LastWatered),
		LastVisited: timestamppb.New(p.LastVisited),
		CreatedAt:   timestamppb.New(p.CreatedAt),
	}
}

func int32Value(v *int) *wrapperspb.Int32Value {
	if v == nil {
		return nil
	}
	return wrapperspb.Int32(int32(*v))
}

func timestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
