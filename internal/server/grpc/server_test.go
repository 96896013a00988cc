package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/virtualgarden/internal/common"
	pb "github.com/dmitrijs2005/virtualgarden/internal/proto"
	"github.com/dmitrijs2005/virtualgarden/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func startBufServer(t *testing.T, s *GRPCServer) pb.GardenServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
		cancel()
		<-done
	})
	return pb.NewGardenServiceClient(conn)
}

func TestServer_OverTheWire(t *testing.T) {
	g := &fakeGardens{}
	s := NewGRPCServer("", nopLogger{}, &fakeUsers{}, g, "wire-secret")
	client := startBufServer(t, s)
	ctx := context.Background()

	resp, err := client.Ping(ctx, &pb.PingRequest{})
	if err != nil || resp.GetStatus() != "OK" {
		t.Fatalf("Ping over the wire failed: %v %v", resp, err)
	}

	_, err = client.FindGardens(ctx, &pb.FindGardensRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated without token, got %v", err)
	}

	token, err := auth.GenerateToken("u-wire", []byte("wire-secret"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	authed := metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)

	created, err := client.InsertGarden(authed, &pb.InsertGardenRequest{Name: "My Garden"})
	if err != nil {
		t.Fatalf("InsertGarden error: %v", err)
	}
	if created.GetGarden().UserId != "u-wire" || g.lastUserID != "u-wire" {
		t.Fatalf("user id did not flow from token: %+v", created.GetGarden())
	}

	if _, err := client.UpdatePlant(authed, &pb.UpdatePlantRequest{Id: "p1", WaterLevel: wrapperspb.Int32(40)}); err != nil {
		t.Fatalf("UpdatePlant error: %v", err)
	}
	if g.lastPatch.WaterLevel == nil || *g.lastPatch.WaterLevel != 40 || g.lastPatch.Happiness != nil {
		t.Fatalf("patch did not survive the wire: %+v", g.lastPatch)
	}
}
