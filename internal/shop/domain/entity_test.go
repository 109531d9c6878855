package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActorFromContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, SystemActor, ActorFromContext(ctx))
	assert.Equal(t, SystemActor, ActorFromContext(WithActor(ctx, "")))
	assert.Equal(t, "admin", ActorFromContext(WithActor(ctx, "admin")))
}
