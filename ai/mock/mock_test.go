package mock

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	m := NewMockEmbedder()
	ctx := context.Background()

	v1, err := m.EmbedText(ctx, "hello")
	require.NoError(t, err)
	v2, err := m.EmbedText(ctx, "hello")
	require.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Len(t, v1, 384)

	var sum float64
	for _, x := range v1 {
		sum += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-4)
	assert.Equal(t, 2, m.CallCount())
}

func TestMockEmbedder_WithVectors(t *testing.T) {
	m := NewMockEmbedder().WithVectors(map[string][]float32{"a": {1, 0}})

	v, err := m.EmbedText(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0}, v)

	_, err = m.EmbedText(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, m.Texts())
}

func TestMockEmbedder_Concurrent(t *testing.T) {
	m := NewMockEmbedder()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.EmbedText(context.Background(), "q")
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, m.CallCount())
}

func TestMockGenerator(t *testing.T) {
	g := NewMockGenerator()

	reply, err := g.Complete(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, DefaultReply, reply)
	assert.Equal(t, Prompt{System: "sys", User: "user"}, g.LastPrompt())

	g.WithReply("", errors.New("boom"))
	_, err = g.Complete(context.Background(), "s", "u")
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 2, g.CallCount())

	g.Reset()
	assert.Equal(t, 0, g.CallCount())
}

func TestMockProvider(t *testing.T) {
	p := NewMockProvider()
	assert.Equal(t, DefaultModelIdentity, p.ModelIdentity())
	assert.Same(t, p.GetMockEmbedder(), p.Embedder())
	assert.Same(t, p.GetMockGenerator(), p.Generator())

	p.SetModelIdentity("other")
	assert.Equal(t, "other", p.ModelIdentity())

	require.NoError(t, p.Close())
	assert.True(t, p.Closed())
}
