package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/virtualgarden/internal/common"
	"github.com/dmitrijs2005/virtualgarden/internal/garden"
	pb "github.com/dmitrijs2005/virtualgarden/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.GardenServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    func(accessToken, refreshToken string)

	// serializes refreshes; a rotated refresh token is single-use
	refreshMu sync.Mutex
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewGardenServiceClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// SetTokens installs a token pair, e.g. one restored from the session DB.
func (c *GRPCClient) SetTokens(accessToken, refreshToken string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken, c.refreshToken = accessToken, refreshToken
}

func (c *GRPCClient) Tokens() (accessToken, refreshToken string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

// OnTokensRefreshed registers fn to be called after every transparent
// token rotation.
func (c *GRPCClient) OnTokensRefreshed(fn func(accessToken, refreshToken string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onRefresh = fn
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	used, _ := c.Tokens()

	err := invoker(withAccessToken(ctx, used), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) {
		return err
	}

	token, rerr := c.refresh(ctx, used)
	if rerr != nil {
		return rerr
	}
	return invoker(withAccessToken(ctx, token), method, req, reply, cc, opts...)
}

// refresh rotates the token pair unless another call already did so after
// stale was sent, and returns the access token to retry with.
func (c *GRPCClient) refresh(ctx context.Context, stale string) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	access, refresh := c.Tokens()
	if access != stale {
		return access, nil
	}
	if refresh == "" {
		return "", status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	resp, err := c.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.accessToken, c.refreshToken = resp.AccessToken, resp.RefreshToken
	fn := c.onRefresh
	c.mu.Unlock()

	if fn != nil {
		fn(resp.AccessToken, resp.RefreshToken)
	}
	return resp.AccessToken, nil
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return c.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *GRPCClient) SignUp(ctx context.Context, email string, password []byte) error {
	_, err := c.client.SignUp(ctx, &pb.SignUpRequest{Email: email, Password: string(password)})
	return c.mapError(err)
}

// SignIn authenticates and keeps the issued tokens for later calls.
func (c *GRPCClient) SignIn(ctx context.Context, email string, password []byte) (*garden.Session, error) {
	resp, err := c.client.SignIn(ctx, &pb.SignInRequest{Email: email, Password: string(password)})
	if err != nil {
		return nil, c.mapError(err)
	}

	c.SetTokens(resp.AccessToken, resp.RefreshToken)
	return &garden.Session{
		UserID:       resp.UserId,
		Email:        email,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// SignOut revokes the refresh token on the server and forgets both tokens,
// even when the server call fails.
func (c *GRPCClient) SignOut(ctx context.Context) error {
	_, refresh := c.Tokens()
	c.SetTokens("", "")

	if refresh == "" {
		return nil
	}
	_, err := c.client.SignOut(ctx, &pb.SignOutRequest{RefreshToken: refresh})
	return c.mapError(err)
}

func (c *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrUnavailable
		}
		return fmt.Errorf("rpc error: %w", err)
	}

	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return &StatusError{Kind: ErrUnauthorized, Message: st.Message()}
	case codes.InvalidArgument:
		return &StatusError{Kind: ErrInvalidArgument, Message: st.Message()}
	case codes.AlreadyExists:
		return &StatusError{Kind: common.ErrorAlreadyExists, Message: st.Message()}
	case codes.NotFound:
		return &StatusError{Kind: common.ErrorNotFound, Message: st.Message()}
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
