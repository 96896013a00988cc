package grpc

import (
	"context"
	"time"

	pb "github.com/dmitrijs2005/virtualgarden/internal/proto"
	"github.com/dmitrijs2005/virtualgarden/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {
	u, err := s.users.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "sign up", err)
	}
	s.logger.Info(ctx, "user registered", "user_id", u.ID)
	return &pb.SignUpResponse{UserId: u.ID}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {
	pair, err := s.users.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "sign in", err)
	}
	return &pb.SignInResponse{UserId: pair.UserID, AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	pair, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, "refresh token", err)
	}
	return &pb.RefreshTokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*pb.SignOutResponse, error) {
	if err := s.users.SignOut(ctx, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, "sign out", err)
	}
	return &pb.SignOutResponse{}, nil
}

func (s *GRPCServer) FindGardens(ctx context.Context, req *pb.FindGardensRequest) (*pb.FindGardensResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.UserId != "" && req.UserId != userID {
		return nil, status.Error(codes.PermissionDenied, "forbidden")
	}

	gardens, err := s.gardens.FindGardens(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "find gardens", err)
	}

	resp := &pb.FindGardensResponse{Gardens: make([]*pb.Garden, 0, len(gardens))}
	for _, g := range gardens {
		resp.Gardens = append(resp.Gardens, gardenToPB(g))
	}
	return resp, nil
}

func (s *GRPCServer) InsertGarden(ctx context.Context, req *pb.InsertGardenRequest) (*pb.InsertGardenResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	g, err := s.gardens.CreateGarden(ctx, userID, req.Name)
	if err != nil {
		return nil, s.toStatus(ctx, "insert garden", err)
	}
	return &pb.InsertGardenResponse{Garden: gardenToPB(*g)}, nil
}

func (s *GRPCServer) FindPlants(ctx context.Context, req *pb.FindPlantsRequest) (*pb.FindPlantsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	plants, err := s.gardens.FindPlants(ctx, userID, req.GardenId)
	if err != nil {
		return nil, s.toStatus(ctx, "find plants", err)
	}

	resp := &pb.FindPlantsResponse{Plants: make([]*pb.Plant, 0, len(plants))}
	for _, p := range plants {
		resp.Plants = append(resp.Plants, plantToPB(p))
	}
	return resp, nil
}

func (s *GRPCServer) InsertPlant(ctx context.Context, req *pb.InsertPlantRequest) (*pb.InsertPlantResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.Plant == nil {
		return nil, status.Error(codes.InvalidArgument, "plant is required")
	}

	p, err := s.gardens.InsertPlant(ctx, userID, plantFromPB(req.Plant))
	if err != nil {
		return nil, s.toStatus(ctx, "insert plant", err)
	}
	return &pb.InsertPlantResponse{Plant: plantToPB(*p)}, nil
}

func (s *GRPCServer) UpdatePlant(ctx context.Context, req *pb.UpdatePlantRequest) (*pb.UpdatePlantResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.gardens.UpdatePlant(ctx, userID, req.Id, patchFromPB(req)); err != nil {
		return nil, s.toStatus(ctx, "update plant", err)
	}
	return &pb.UpdatePlantResponse{}, nil
}

func (s *GRPCServer) DeletePlant(ctx context.Context, req *pb.DeletePlantRequest) (*pb.DeletePlantResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.gardens.DeletePlant(ctx, userID, req.Id); err != nil {
		return nil, s.toStatus(ctx, "delete plant", err)
	}
	return &pb.DeletePlantResponse{}, nil
}

func gardenToPB(g models.Garden) *pb.Garden {
	return &pb.Garden{Id: g.ID, UserId: g.UserID, Name: g.Name, CreatedAt: timestamppb.New(g.CreatedAt)}
}

func plantToPB(p models.Plant) *pb.Plant {
	return &pb.Plant{
		Id:          p.ID,
		GardenId:    p.GardenID,
		Type:        p.Type,
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

func plantFromPB(p *pb.Plant) models.Plant {
	return models.Plant{
		ID:          p.GetId(),
		GardenID:    p.GetGardenId(),
		Type:        p.GetType(),
		PositionX:   int(p.GetPositionX()),
		PositionY:   int(p.GetPositionY()),
		GrowthStage: int(p.GetGrowthStage()),
		WaterLevel:  int(p.GetWaterLevel()),
		Happiness:   int(p.GetHappiness()),
		LastWatered: asTime(p.GetLastWatered()),
		LastVisited: asTime(p.GetLastVisited()),
		CreatedAt:   asTime(p.GetCreatedAt()),
	}
}

func patchFromPB(req *pb.UpdatePlantRequest) models.PlantPatch {
	return models.PlantPatch{
		GrowthStage: intPtr(req.GetGrowthStage()),
		WaterLevel:  intPtr(req.GetWaterLevel()),
		Happiness:   intPtr(req.GetHappiness()),
		LastWatered: timePtr(req.GetLastWatered()),
		LastVisited: timePtr(req.GetLastVisited()),
	}
}

func intPtr(v *wrapperspb.Int32Value) *int {
	if v == nil {
		return nil
	}
	i := int(v.GetValue())
	return &i
}

// asTime maps an unset timestamp to the zero time instead of the Unix epoch.
func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func timePtr(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}
