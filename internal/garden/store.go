package garden

import "context"

// Store is the record store behind a garden. Implementations enforce that a
// caller only reaches its own gardens and plants.
type Store interface {
	FindGardens(ctx context.Context, userID string) ([]Garden, error)
	InsertGarden(ctx context.Context, g Garden) (Garden, error)
	FindPlants(ctx context.Context, gardenID string) ([]Plant, error)
	InsertPlant(ctx context.Context, p Plant) (Plant, error)
	UpdatePlant(ctx context.Context, id string, patch PlantPatch) error
	DeletePlant(ctx context.Context, id string) error
}

// Auth is the identity provider. OnSessionChange callbacks fire after every
// successful sign-in and sign-out with the new session (nil when signed out).
type Auth interface {
	CurrentSession(ctx context.Context) (*Session, error)
	OnSessionChange(fn func(*Session)) (unsubscribe func())
	SignUp(ctx context.Context, email string, password []byte) error
	SignIn(ctx context.Context, email string, password []byte) (*Session, error)
	SignOut(ctx context.Context) error
}
