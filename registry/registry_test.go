package registry

import (
	"context"
	"testing"
	"time"

	"github.com/dHofmeister/transforms/quaternion"
	"github.com/dHofmeister/transforms/timestamp"
	"github.com/dHofmeister/transforms/transform"
	"github.com/dHofmeister/transforms/vector3"
	"github.com/stretchr/testify/require"
)

func directTransform(parent, child string, x float64, at timestamp.Timestamp) transform.Transform {
	return transform.Transform{
		Translation: vector3.Vector3{X: x},
		Rotation:    quaternion.Identity,
		Timestamp:   at,
		Parent:      parent,
		Child:       child,
	}
}

func TestGetTransform_DirectLookup(t *testing.T) {
	r := New(timestamp.NewDurationFromStdlib(time.Minute))
	at := timestamp.Now()
	require.NoError(t, r.AddTransform(directTransform("world", "a", 1, at)))

	result, err := r.GetTransform("a", "world", at)
	require.NoError(t, err)
	require.Equal(t, "a", result.Parent)
	require.Equal(t, "world", result.Child)
}

func TestGetTransform_ChainsThroughCommonAncestor(t *testing.T) {
	r := New(timestamp.NewDurationFromStdlib(time.Minute))
	at := timestamp.Now()
	require.NoError(t, r.AddTransform(directTransform("world", "a", 1, at)))
	require.NoError(t, r.AddTransform(directTransform("world", "b", 2, at)))

	result, err := r.GetTransform("a", "b", at)
	require.NoError(t, err)
	require.Equal(t, "a", result.Parent)
	require.Equal(t, "b", result.Child)
}

func TestGetTransform_UnknownFrames(t *testing.T) {
	r := New(timestamp.NewDurationFromStdlib(time.Minute))
	_, err := r.GetTransform("a", "b", timestamp.Now())
	require.Error(t, err)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestGetTransform_DescendantChain(t *testing.T) {
	r := New(timestamp.NewDurationFromStdlib(time.Minute))
	at := timestamp.Now()
	require.NoError(t, r.AddTransform(directTransform("world", "a", 1, at)))
	require.NoError(t, r.AddTransform(directTransform("a", "b", 1, at)))

	result, err := r.GetTransform("world", "b", at)
	require.NoError(t, err)
	require.Equal(t, "world", result.Parent)
	require.Equal(t, "b", result.Child)
}

func TestAsyncRegistry_GetTransform(t *testing.T) {
	r := NewAsync(timestamp.NewDurationFromStdlib(time.Minute))
	at := timestamp.Now()
	require.NoError(t, r.AddTransform(directTransform("world", "a", 1, at)))

	result, err := r.GetTransform("a", "world", at)
	require.NoError(t, err)
	require.Equal(t, "a", result.Parent)
}

func TestAsyncRegistry_AwaitTransform_UnblocksOnInsert(t *testing.T) {
	r := NewAsync(timestamp.NewDurationFromStdlib(time.Minute))
	at := timestamp.Now()

	done := make(chan struct{})
	var result transform.Transform
	var resultErr error
	go func() {
		result, resultErr = r.AwaitTransform(context.Background(), "a", "world", at)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, r.AddTransform(directTransform("world", "a", 1, at)))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("AwaitTransform did not unblock after AddTransform")
	}

	require.NoError(t, resultErr)
	require.Equal(t, "a", result.Parent)
}

func TestAsyncRegistry_AwaitTransform_CancelledContext(t *testing.T) {
	r := NewAsync(timestamp.NewDurationFromStdlib(time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.AwaitTransform(ctx, "a", "b", timestamp.Now())
	require.Error(t, err)
}
