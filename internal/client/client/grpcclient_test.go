package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/virtualgarden/internal/common"
	"github.com/dmitrijs2005/virtualgarden/internal/garden"
	pb "github.com/dmitrijs2005/virtualgarden/internal/proto"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// fakePB records the last request per method and answers with preset values.
type fakePB struct {
	pb.GardenServiceClient

	lastRefreshReq *pb.RefreshTokenRequest
	refreshCalls   int
	refreshResp    *pb.RefreshTokenResponse
	refreshErr     error

	pingResp *pb.PingResponse
	pingErr  error

	lastSignUp *pb.SignUpRequest
	signUpErr  error

	signInResp *pb.SignInResponse
	signInErr  error

	lastSignOut *pb.SignOutRequest
	signOutErr  error

	lastFindGardens *pb.FindGardensRequest
	findGardensResp *pb.FindGardensResponse

	lastInsertPlant *pb.InsertPlantRequest
	lastUpdatePlant *pb.UpdatePlantRequest
	updatePlantErr  error
}

func (f *fakePB) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.RefreshTokenResponse, error) {
	f.lastRefreshReq = in
	f.refreshCalls++
	return f.refreshResp, f.refreshErr
}

func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}

func (f *fakePB) SignUp(ctx context.Context, in *pb.SignUpRequest, opts ...grpc.CallOption) (*pb.SignUpResponse, error) {
	f.lastSignUp = in
	return &pb.SignUpResponse{}, f.signUpErr
}

func (f *fakePB) SignIn(ctx context.Context, in *pb.SignInRequest, opts ...grpc.CallOption) (*pb.SignInResponse, error) {
	return f.signInResp, f.signInErr
}

func (f *fakePB) SignOut(ctx context.Context, in *pb.SignOutRequest, opts ...grpc.CallOption) (*pb.SignOutResponse, error) {
	f.lastSignOut = in
	return &pb.SignOutResponse{}, f.signOutErr
}

func (f *fakePB) FindGardens(ctx context.Context, in *pb.FindGardensRequest, opts ...grpc.CallOption) (*pb.FindGardensResponse, error) {
	f.lastFindGardens = in
	return f.findGardensResp, nil
}

func (f *fakePB) InsertPlant(ctx context.Context, in *pb.InsertPlantRequest, opts ...grpc.CallOption) (*pb.InsertPlantResponse, error) {
	f.lastInsertPlant = in
	p := proto.Clone(in.Plant).(*pb.Plant)
	p.Id = "p-1"
	return &pb.InsertPlantResponse{Plant: p}, nil
}

func (f *fakePB) UpdatePlant(ctx context.Context, in *pb.UpdatePlantRequest, opts ...grpc.CallOption) (*pb.UpdatePlantResponse, error) {
	f.lastUpdatePlant = in
	return &pb.UpdatePlantResponse{}, f.updatePlantErr
}

func tokenFrom(t *testing.T, ctx context.Context) string {
	t.Helper()
	md, _ := metadata.FromOutgoingContext(ctx)
	toks := md.Get(common.AccessTokenHeaderName)
	require.Len(t, toks, 1)
	return toks[0]
}

func expired() error {
	return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
}

func TestInterceptor_RefreshesTokenOnExpiredAndRetries(t *testing.T) {
	f := &fakePB{refreshResp: &pb.RefreshTokenResponse{AccessToken: "A2", RefreshToken: "R2"}}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	var persisted []string
	c.OnTokensRefreshed(func(a, r string) { persisted = append(persisted, a, r) })

	callCount := 0
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		callCount++
		if callCount == 1 {
			require.Equal(t, "A1", tokenFrom(t, ctx))
			return expired()
		}
		require.Equal(t, "A2", tokenFrom(t, ctx))
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, 2, callCount)
	require.Equal(t, "R1", f.lastRefreshReq.RefreshToken)
	require.Equal(t, []string{"A2", "R2"}, persisted)

	a, r := c.Tokens()
	require.Equal(t, "A2", a)
	require.Equal(t, "R2", r)
}

func TestInterceptor_NoRefreshWithoutRefreshToken(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f, accessToken: "A1"}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return expired()
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
	require.Zero(t, f.refreshCalls)
}

func TestInterceptor_RefreshFailureIsReturned(t *testing.T) {
	f := &fakePB{refreshErr: status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	calls := 0
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		calls++
		return expired()
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Equal(t, codes.Unauthenticated, status.Code(err))
	require.Equal(t, 1, calls)
}

func TestInterceptor_IgnoresOtherErrors(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f, accessToken: "X", refreshToken: "R"}

	for _, e := range []error{
		status.Error(codes.Internal, "boom"),
		status.Error(codes.Unauthenticated, "invalid token"),
	} {
		invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			return e
		}
		require.Error(t, c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker))
	}
	require.Zero(t, f.refreshCalls)
}

func TestInterceptor_ConcurrentExpiryRefreshesOnce(t *testing.T) {
	f := &fakePB{refreshResp: &pb.RefreshTokenResponse{AccessToken: "A2", RefreshToken: "R2"}}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		if md.Get(common.AccessTokenHeaderName)[0] == "A1" {
			return expired()
		}
		return nil
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, 1, f.refreshCalls)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.NoError(t, c.mapError(nil))
	require.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x")), ErrUnauthorized)
	require.ErrorIs(t, c.mapError(status.Error(codes.PermissionDenied, "x")), ErrUnauthorized)
	require.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "x")), ErrUnavailable)
	require.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "x")), ErrUnavailable)
	require.ErrorIs(t, c.mapError(status.Error(codes.NotFound, "x")), common.ErrorNotFound)
	require.ErrorIs(t, c.mapError(context.DeadlineExceeded), ErrUnavailable)

	dup := c.mapError(status.Error(codes.AlreadyExists, "user already registered"))
	require.ErrorIs(t, dup, common.ErrorAlreadyExists)
	require.EqualError(t, dup, "user already registered")

	weak := c.mapError(status.Error(codes.InvalidArgument, common.ErrorWeakPassword.Error()))
	require.ErrorIs(t, weak, ErrInvalidArgument)
	require.EqualError(t, weak, "password should be at least 6 characters")

	require.ErrorContains(t, c.mapError(errors.New("plain")), "rpc error:")
}

func TestPing(t *testing.T) {
	require.NoError(t, (&GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}}).Ping(context.Background()))
	require.ErrorIs(t, (&GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "NOT_OK"}}}).Ping(context.Background()), ErrUnavailable)
	require.ErrorIs(t, (&GRPCClient{client: &fakePB{pingErr: status.Error(codes.Unavailable, "down")}}).Ping(context.Background()), ErrUnavailable)
}

func TestSignUp_SendsCredentials(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}

	require.NoError(t, c.SignUp(context.Background(), "ann@example.com", []byte("secret")))
	require.Equal(t, "ann@example.com", f.lastSignUp.Email)
	require.Equal(t, "secret", f.lastSignUp.Password)
}

func TestSignIn_StoresTokens(t *testing.T) {
	f := &fakePB{signInResp: &pb.SignInResponse{UserId: "u1", AccessToken: "A", RefreshToken: "R"}}
	c := &GRPCClient{client: f}

	s, err := c.SignIn(context.Background(), "ann@example.com", []byte("secret"))
	require.NoError(t, err)
	require.Equal(t, garden.Session{UserID: "u1", Email: "ann@example.com", AccessToken: "A", RefreshToken: "R"}, *s)

	a, r := c.Tokens()
	require.Equal(t, "A", a)
	require.Equal(t, "R", r)
}

func TestSignIn_BadCredentials(t *testing.T) {
	f := &fakePB{signInErr: status.Error(codes.Unauthenticated, "invalid login credentials")}
	c := &GRPCClient{client: f}

	_, err := c.SignIn(context.Background(), "ann@example.com", []byte("nope"))
	require.ErrorIs(t, err, ErrUnauthorized)
	require.EqualError(t, err, "invalid login credentials")
}

func TestSignOut_RevokesAndForgets(t *testing.T) {
	f := &fakePB{signOutErr: status.Error(codes.Unavailable, "down")}
	c := &GRPCClient{client: f, accessToken: "A", refreshToken: "R"}

	require.ErrorIs(t, c.SignOut(context.Background()), ErrUnavailable)
	require.Equal(t, "R", f.lastSignOut.RefreshToken)

	a, r := c.Tokens()
	require.Empty(t, a)
	require.Empty(t, r)

	f.lastSignOut = nil
	require.NoError(t, c.SignOut(context.Background()))
	require.Nil(t, f.lastSignOut)
}

func TestStore_Conversions(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f := &fakePB{findGardensResp: &pb.FindGardensResponse{Gardens: []*pb.Garden{{Id: "g1", UserId: "u1", Name: "My Garden"}}}}
	c := &GRPCClient{client: f}
	ctx := context.Background()

	gardens, err := c.FindGardens(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", f.lastFindGardens.UserId)
	require.Equal(t, []garden.Garden{{ID: "g1", UserID: "u1", Name: "My Garden"}}, gardens)

	in := garden.Plant{GardenID: "g1", Kind: garden.KindMushroom, PositionX: 12, PositionY: 88, WaterLevel: 100, Happiness: 100, LastWatered: now, LastVisited: now}
	out, err := c.InsertPlant(ctx, in)
	require.NoError(t, err)
	require.Equal(t, "mushroom", f.lastInsertPlant.Plant.Type)
	in.ID = "p-1"
	require.Equal(t, in, out)

	water, stage := 40, 2
	require.NoError(t, c.UpdatePlant(ctx, "p-1", garden.PlantPatch{WaterLevel: &water, GrowthStage: &stage, LastVisited: &now}))
	req := f.lastUpdatePlant
	require.Equal(t, int32(40), req.GetWaterLevel().GetValue())
	require.Equal(t, int32(2), req.GetGrowthStage().GetValue())
	require.Nil(t, req.Happiness)
	require.Nil(t, req.LastWatered)
	require.Equal(t, now, req.GetLastVisited().AsTime())

	f.updatePlantErr = status.Error(codes.NotFound, "not found")
	require.ErrorIs(t, c.UpdatePlant(ctx, "p-x", garden.PlantPatch{WaterLevel: &water}), common.ErrorNotFound)
}
