package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/virtualgarden/internal/client/config"
	"github.com/dmitrijs2005/virtualgarden/internal/garden"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubNewApp(t *testing.T, auth *fakeAuth, store *sliceStore) {
	t.Helper()
	orig := newAppFn
	newAppFn = func(ctx context.Context, cfg *config.Config) (*App, error) {
		return newApp(auth, store, fixedClock{testNow}, nopLogger{}, strings.NewReader(""), &bytes.Buffer{}), nil
	}
	t.Cleanup(func() { newAppFn = orig })
}

func TestRootCommand_HasSubcommandsAndFlags(t *testing.T) {
	var app *App
	root := NewRootCommand(&app)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"register", "login", "logout", "list", "tick", "show", "plant", "water", "care", "remove"}, names)

	for _, f := range []string{"config", "addr", "interval", "file", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(f), f)
	}
}

func TestRootCommand_OneShotPlantThenList(t *testing.T) {
	store := &sliceStore{}
	stubNewApp(t, newFakeAuth(ann), store)

	var app *App
	root := NewRootCommand(&app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"plant", "succulent", "-i", "5"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	require.NotNil(t, app)
	assert.False(t, app.ticking)
	require.Len(t, store.plants, 1)
	assert.Equal(t, garden.KindSucculent, store.plants[0].Kind)
	assert.Contains(t, out.String(), "Planted:")
	require.NoError(t, app.Close())
}

func TestRootCommand_ArgsValidated(t *testing.T) {
	stubNewApp(t, newFakeAuth(ann), &sliceStore{})

	var app *App
	root := NewRootCommand(&app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"water"})

	assert.Error(t, root.ExecuteContext(context.Background()))
}

func TestExecute_ReturnsCommandError(t *testing.T) {
	stubNewApp(t, newFakeAuth(nil), &sliceStore{})

	err := Execute(context.Background(), []string{"list"})
	assert.ErrorIs(t, err, errNotSignedIn)
}
