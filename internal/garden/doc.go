// Package garden holds the core of the virtual garden: the plant model, the
// pure decay/growth simulation, the Engine that owns a garden's in-memory
// working set, and the Bootstrapper that finds or creates a user's garden.
//
// Persistence and identity are reached only through the Store and Auth
// interfaces, which are injected at construction time.
package garden
