package cvio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	rc := NewContext(context.Background(), "deploy")
	require.NotNil(t, rc)

	assert.NotNil(t, rc.Ctx)
	assert.NotNil(t, rc.Log)
	assert.NotNil(t, rc.Span)
	assert.Equal(t, "deploy", rc.Command)
	assert.False(t, rc.Timestamp.IsZero())
}

func TestNewContext_NilParent(t *testing.T) {
	rc := NewContext(nil, "check") //nolint:staticcheck // nil parent is tolerated by design
	require.NotNil(t, rc)
	assert.NotNil(t, rc.Ctx)
}

func TestHandlePanic(t *testing.T) {
	rc := NewContext(context.Background(), "deploy")

	var err error
	func() {
		defer rc.HandlePanic(&err)
		panic("boom")
	}()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestEnd_DoesNotPanic(t *testing.T) {
	rc := NewContext(context.Background(), "deploy")
	var err error
	rc.End(&err)
}
