// Package middleware decorates a ports.Store with cross-cutting
// behavior such as statement logging.
package middleware

import "github.com/aretw0/switchboard/pkg/ports"

// Middleware wraps a Store to add behavior around every statement.
type Middleware func(ports.Store) ports.Store

// Chain applies middlewares so the first one listed sees calls first.
func Chain(store ports.Store, mws ...Middleware) ports.Store {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
