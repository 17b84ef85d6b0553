package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	lambdamock "github.com/layerforge/layerforge/mocks/internal_/lambda"
)

func TestGrant_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("grants access and returns the policy statement", func(t *testing.T) {
		client := lambdamock.NewClient(t)
		client.EXPECT().
			AddLayerVersionPermission(mock.Anything, "my-layer", int64(7), "123456789012").
			Return("{\"Sid\":\"grant-123456789012-v7\"}", nil)

		statement, err := NewGrant("my-layer", client).Run(ctx, 7, "123456789012")
		require.NoError(t, err)
		assert.Contains(t, statement, "grant-123456789012-v7")
	})

	t.Run("rejects a malformed account id before calling aws", func(t *testing.T) {
		client := lambdamock.NewClient(t)

		_, err := NewGrant("my-layer", client).Run(ctx, 7, "not-an-account")
		assert.Error(t, err)
		client.AssertNotCalled(t, "AddLayerVersionPermission")
	})
}
