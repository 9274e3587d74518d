package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "user-42")

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-42", userID)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetAccountIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccountIDCtxKey, "acc-7")

	accountID, ok := GetAccountIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "acc-7", accountID)
}

func TestGetAccountIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccountIDCtxKey, 7)

	_, ok := GetAccountIDFromContext(ctx)
	assert.False(t, ok)
}
