package util

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", GetRequestID(ctx))

	generated := GetRequestID(WithRequestID(context.Background(), ""))
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	assert.Empty(t, GetRequestID(context.Background()))
}

func TestWithClientIP(t *testing.T) {
	ctx := WithClientIP(context.Background(), "10.0.0.1")

	assert.Equal(t, "10.0.0.1", GetClientIP(ctx))
	assert.Empty(t, GetClientIP(context.Background()))
}
