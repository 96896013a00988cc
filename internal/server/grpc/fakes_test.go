package grpc

import (
	"context"

	"github.com/dmitrijs2005/virtualgarden/internal/logging"
	"github.com/dmitrijs2005/virtualgarden/internal/server/models"
	"github.com/dmitrijs2005/virtualgarden/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeUsers struct {
	signUpResp  *models.User
	signUpErr   error
	signInResp  *services.TokenPair
	signInErr   error
	refreshResp *services.TokenPair
	refreshErr  error
	signOutErr  error

	signedOut []string
}

func (f *fakeUsers) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	return f.signUpResp, f.signUpErr
}

func (f *fakeUsers) SignIn(ctx context.Context, email, password string) (*services.TokenPair, error) {
	return f.signInResp, f.signInErr
}

func (f *fakeUsers) RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}

func (f *fakeUsers) SignOut(ctx context.Context, refreshToken string) error {
	f.signedOut = append(f.signedOut, refreshToken)
	return f.signOutErr
}

// fakeGardens keeps one user's data in memory and records who asked.
type fakeGardens struct {
	gardens []models.Garden
	plants  []models.Plant
	err     error

	lastUserID string
	lastPatch  models.PlantPatch
}

func (f *fakeGardens) FindGardens(ctx context.Context, userID string) ([]models.Garden, error) {
	f.lastUserID = userID
	return f.gardens, f.err
}

func (f *fakeGardens) CreateGarden(ctx context.Context, userID, name string) (*models.Garden, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	g := models.Garden{ID: "g-" + userID, UserID: userID, Name: name}
	f.gardens = append(f.gardens, g)
	return &g, nil
}

func (f *fakeGardens) FindPlants(ctx context.Context, userID, gardenID string) ([]models.Plant, error) {
	f.lastUserID = userID
	return f.plants, f.err
}

func (f *fakeGardens) InsertPlant(ctx context.Context, userID string, p models.Plant) (*models.Plant, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	p.ID = "p-new"
	f.plants = append(f.plants, p)
	return &p, nil
}

func (f *fakeGardens) UpdatePlant(ctx context.Context, userID, id string, patch models.PlantPatch) error {
	f.lastUserID = userID
	f.lastPatch = patch
	return f.err
}

func (f *fakeGardens) DeletePlant(ctx context.Context, userID, id string) error {
	f.lastUserID = userID
	return f.err
}
