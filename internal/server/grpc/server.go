// Package grpc exposes the user and garden services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/virtualgarden/internal/logging"
	pb "github.com/dmitrijs2005/virtualgarden/internal/proto"
	"github.com/dmitrijs2005/virtualgarden/internal/server/models"
	"github.com/dmitrijs2005/virtualgarden/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	SignUp(ctx context.Context, email, password string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	SignOut(ctx context.Context, refreshToken string) error
}

type gardenSvc interface {
	FindGardens(ctx context.Context, userID string) ([]models.Garden, error)
	CreateGarden(ctx context.Context, userID, name string) (*models.Garden, error)
	FindPlants(ctx context.Context, userID, gardenID string) ([]models.Plant, error)
	InsertPlant(ctx context.Context, userID string, p models.Plant) (*models.Plant, error)
	UpdatePlant(ctx context.Context, userID, id string, patch models.PlantPatch) error
	DeletePlant(ctx context.Context, userID, id string) error
}

type GRPCServer struct {
	pb.UnimplementedGardenServiceServer
	address   string
	users     userSvc
	gardens   gardenSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(address string, l logging.Logger, us userSvc, gs gardenSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		gardens:   gs,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterGardenServiceServer(srv, s)
	return srv
}

// Run listens on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())
	return srv.Serve(lis)
}
