// Package actor carries the identity of the caller through a request context.
// Services read it to stamp audit fields.
package actor

import (
	"context"

	"github.com/google/uuid"
)

// Actor is the user on whose behalf a request runs.
type Actor struct {
	ID   uuid.UUID
	Name string
}

// System is used when no authenticated user is attached to the context.
var System = Actor{ID: uuid.Nil, Name: "system"}

type ctxKey struct{}

// WithActor returns a copy of ctx carrying a.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// FromContext returns the actor stored in ctx, or System.
func FromContext(ctx context.Context) Actor {
	if ctx == nil {
		return System
	}
	if a, ok := ctx.Value(ctxKey{}).(Actor); ok {
		return a
	}
	return System
}
