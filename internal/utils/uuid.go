package utils

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered trace ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, or a random v4 when v7 generation fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewTraceContext attaches a freshly generated trace id to ctx unless one is
// already present.
func (g *UUIDGenerator) NewTraceContext(ctx context.Context) context.Context {
	if _, ok := GetTraceIDFromContext(ctx); ok {
		return ctx
	}
	return WithTraceID(ctx, g.Generate())
}
