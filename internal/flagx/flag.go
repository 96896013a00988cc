// Package flagx lets the config layers pick their own flags out of a shared
// argument list and ignore everything else.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Select returns the arguments that belong to the named flags, values
// included. Names are given without dashes; "-n", "--n", "-n=v" and
// "-n v" are all recognised. An argument starting with "-" is never taken
// as a value.
func Select(args []string, names ...string) []string {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	out := []string{}
	for i := 0; i < len(args); i++ {
		name, hasValue, ok := split(args[i])
		if !ok || !want[name] {
			continue
		}
		out = append(out, args[i])
		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

func split(arg string) (name string, hasValue bool, ok bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false, false
	}
	name = strings.TrimLeft(arg, "-")
	if k, _, found := strings.Cut(name, "="); found {
		return k, true, true
	}
	return name, false, name != ""
}

// ConfigPath returns the value of -c or -config in args, or "" when
// neither is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(Select(args, "c", "config"))

	return path
}
