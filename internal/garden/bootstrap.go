package garden

import (
	"context"

	"github.com/dmitrijs2005/virtualgarden/internal/logging"
)

// Bootstrapper resolves the garden of a signed-in user.
type Bootstrapper struct {
	store  Store
	logger logging.Logger
}

func NewBootstrapper(store Store, logger logging.Logger) *Bootstrapper {
	return &Bootstrapper{store: store, logger: logger.With("module", "bootstrap")}
}

// EnsureGarden returns the id of userID's garden, creating one named
// DefaultGardenName when the user has none. Failures are logged and returned
// as *PersistenceError; nothing is retried.
func (b *Bootstrapper) EnsureGarden(ctx context.Context, userID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, StoreTimeout)
	defer cancel()

	gardens, err := b.store.FindGardens(ctx, userID)
	if err != nil {
		b.logger.Error(ctx, "error loading garden", "user_id", userID, "error", err)
		return "", &PersistenceError{Op: "find garden", Err: err}
	}
	if len(gardens) > 0 {
		return gardens[0].ID, nil
	}

	g, err := b.store.InsertGarden(ctx, Garden{UserID: userID, Name: DefaultGardenName})
	if err != nil {
		b.logger.Error(ctx, "error creating garden", "user_id", userID, "error", err)
		return "", &PersistenceError{Op: "create garden", Err: err}
	}

	b.logger.Info(ctx, "garden created", "user_id", userID, "garden_id", g.ID)
	return g.ID, nil
}
