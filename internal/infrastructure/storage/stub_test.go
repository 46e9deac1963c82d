package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubObjectStorage_UploadThenExists(t *testing.T) {
	stub := NewStubObjectStorage()
	ctx := context.Background()

	url, expiresAt, err := stub.GenerateUploadURL(ctx, "products/p1/img.png", "image/png", 10*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "products/p1/img.png")
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), expiresAt, time.Second)

	exists, err := stub.ObjectExists(ctx, "products/p1/img.png")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = stub.ObjectExists(ctx, "products/p1/other.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStubObjectStorage_Delete(t *testing.T) {
	stub := NewStubObjectStorage()
	ctx := context.Background()

	_, _, err := stub.GenerateUploadURL(ctx, "k", "image/png", time.Minute)
	require.NoError(t, err)
	require.NoError(t, stub.DeleteObject(ctx, "k"))

	exists, err := stub.ObjectExists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStubObjectStorage_EmptyKeyRejected(t *testing.T) {
	stub := NewStubObjectStorage()
	ctx := context.Background()

	_, _, err := stub.GenerateUploadURL(ctx, "", "image/png", time.Minute)
	assert.Error(t, err)
	assert.Error(t, stub.DeleteObject(ctx, ""))
	_, err = stub.ObjectExists(ctx, "")
	assert.Error(t, err)
}
