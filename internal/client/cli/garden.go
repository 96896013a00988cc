package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/virtualgarden/internal/garden"
	"github.com/dmitrijs2005/virtualgarden/internal/visual"
)

var (
	errNotSignedIn = errors.New("not signed in")
	errNoGarden    = errors.New("garden not ready")
	errAmbiguousID = errors.New("ambiguous plant id")
)

// requireGarden prints why plant commands are unavailable, if they are.
func (a *App) requireGarden() error {
	if !a.isLoggedIn() {
		a.println("Please log in first.")
		return errNotSignedIn
	}
	if !a.hasGarden() {
		a.println("Creating your garden... try again in a moment.")
		return errNoGarden
	}
	return nil
}

// resolve finds the plant whose id starts with prefix.
func (a *App) resolve(prefix string) (garden.Plant, error) {
	var found []garden.Plant
	for _, p := range a.engine.Plants() {
		if p.ID == prefix {
			return p, nil
		}
		if prefix != "" && strings.HasPrefix(p.ID, prefix) {
			found = append(found, p)
		}
	}

	switch len(found) {
	case 0:
		a.printf("No plant %q in your garden.\n", prefix)
		return garden.Plant{}, garden.ErrPlantNotFound
	case 1:
		return found[0], nil
	default:
		a.printf("%q matches %d plants; type more of the id.\n", prefix, len(found))
		return garden.Plant{}, errAmbiguousID
	}
}

// saveFailed reports a store failure without its details, which are in the
// operator log.
func (a *App) saveFailed(err error) error {
	if garden.IsPersistence(err) {
		a.println("Could not save. Try again.")
	} else {
		a.println("Error:", err.Error())
	}
	return err
}

func (a *App) List(ctx context.Context) error {
	if err := a.requireGarden(); err != nil {
		return err
	}

	plants := a.engine.Plants()
	if len(plants) == 0 {
		a.println("Your garden is empty. Plant something: plant <flower|tree|succulent|mushroom>")
		return nil
	}
	for _, p := range plants {
		a.println(renderPlant(p))
	}
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	if err := a.requireGarden(); err != nil {
		return err
	}
	p, err := a.resolve(id)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, renderDetail(p, a.clock.Now()))
	return nil
}

func (a *App) Plant(ctx context.Context, kindName string) error {
	if err := a.requireGarden(); err != nil {
		return err
	}
	kind, err := garden.ParseKind(strings.ToLower(kindName))
	if err != nil {
		a.println("Unknown plant type. Choose one of: flower, tree, succulent, mushroom.")
		return err
	}

	p, err := a.engine.Plant(ctx, kind)
	if err != nil {
		return a.saveFailed(err)
	}
	a.println("Planted:", renderPlant(p))
	return nil
}

func (a *App) Water(ctx context.Context, id string) error {
	if err := a.requireGarden(); err != nil {
		return err
	}
	p, err := a.resolve(id)
	if err != nil {
		return err
	}
	if p.WaterLevel >= garden.MaxLevel {
		a.printf("The %s is not thirsty.\n", strings.ToLower(visual.KindName(p.Kind)))
		return nil
	}

	p, err = a.engine.Water(ctx, p.ID)
	if err != nil {
		return a.saveFailed(err)
	}
	a.println("Watered:", renderPlant(p))
	return nil
}

func (a *App) Care(ctx context.Context, id string) error {
	if err := a.requireGarden(); err != nil {
		return err
	}
	p, err := a.resolve(id)
	if err != nil {
		return err
	}
	if p.Happiness >= garden.MaxLevel {
		a.printf("The %s is as happy as can be.\n", strings.ToLower(visual.KindName(p.Kind)))
		return nil
	}

	p, err = a.engine.Care(ctx, p.ID)
	if err != nil {
		return a.saveFailed(err)
	}
	a.println("Cared for:", renderPlant(p))
	return nil
}

func (a *App) Remove(ctx context.Context, id string) error {
	if err := a.requireGarden(); err != nil {
		return err
	}
	p, err := a.resolve(id)
	if err != nil {
		return err
	}

	if err := a.engine.Remove(ctx, p.ID); err != nil {
		return a.saveFailed(err)
	}
	a.printf("Removed %s %s.\n", strings.ToLower(visual.KindName(p.Kind)), shortID(p.ID))
	return nil
}

// Tick advances the simulation now instead of waiting for the ticker.
func (a *App) Tick(ctx context.Context) error {
	if err := a.requireGarden(); err != nil {
		return err
	}
	a.engine.RunTick(ctx)
	return a.List(ctx)
}
