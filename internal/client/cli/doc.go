// Package cli is the terminal front end of the virtual garden.
//
// Without a subcommand the binary opens a REPL: the session stored in the
// local database is restored, the user's garden is found or created, its
// plants are loaded and the simulation ticks in the background until the
// user exits. Subcommands (list, plant, water, care, remove, tick, login,
// logout, register) do the same bootstrap, run one action and quit.
//
// Plants are addressed by any unique prefix of their id.
package cli
