// Package envtest provides fake environment variable backends for tests
// exercising os.Getenv-shaped lookups.
package envtest

import "fmt"

// Env is a fake environment.
type Env map[string]string

// Empty is an environment with nothing set.
var Empty = Env{}

// MustPairs builds an Env from alternating key/value items, panicking if
// the list is uneven.
func MustPairs(pairs ...string) Env {
	if len(pairs)%2 != 0 {
		panic(fmt.Sprintf("%d items in environment are not even", len(pairs)))
	}

	env := make(Env, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		env[pairs[i]] = pairs[i+1]
	}
	return env
}

// Getenv is an analog for the os.Getenv operation.
func (e Env) Getenv(k string) string { return e[k] }
