package feed

import (
	"testing"
	"time"

	"go-neon-defense/internal/app"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	snap app.Snapshot
	m    app.MapView
}

func (f *fakeSource) Snapshot() app.Snapshot { return f.snap }
func (f *fakeSource) MapView() app.MapView   { return f.m }

type fakeOut struct {
	maps   []any
	frames []Message
}

func (f *fakeOut) PublishMap(payload any) error {
	f.maps = append(f.maps, payload)
	return nil
}

func (f *fakeOut) Broadcast(msg Message) error {
	f.frames = append(f.frames, msg)
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	out := &fakeOut{}
	src := &fakeSource{snap: app.Snapshot{Level: 1}, m: app.MapView{Seed: 7}}
	p := NewPublisher(out, 100*time.Millisecond)
	start := time.Unix(1000, 0)

	sent, err := p.Publish(src, start)
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Len(t, out.maps, 1, "the first frame carries the map")
	require.Len(t, out.frames, 1)
	assert.Equal(t, TypeFrame, out.frames[0].Type)

	sent, _ = p.Publish(src, start.Add(50*time.Millisecond))
	assert.False(t, sent, "rate limited")

	sent, _ = p.Publish(src, start.Add(100*time.Millisecond))
	assert.True(t, sent)
	assert.Len(t, out.maps, 1)
	assert.Len(t, out.frames, 2)
}

func TestPublisher_RepublishesMapOnChange(t *testing.T) {
	out := &fakeOut{}
	src := &fakeSource{snap: app.Snapshot{Level: 1}, m: app.MapView{Seed: 7}}
	p := NewPublisher(out, 0)
	now := time.Unix(1000, 0)

	_, err := p.Publish(src, now)
	require.NoError(t, err)

	src.snap.Level = 2
	src.m.Seed = 2 * 7919
	_, err = p.Publish(src, now.Add(time.Second))
	require.NoError(t, err)
	require.Len(t, out.maps, 2)
	assert.Equal(t, uint32(2*7919), out.maps[1].(app.MapView).Seed)

	src.m.Seed = 99
	_, err = p.Publish(src, now.Add(2*time.Second))
	require.NoError(t, err)
	assert.Len(t, out.maps, 3, "a new map on the same level")
}

func TestPublisher_WithGame(t *testing.T) {
	g := app.NewGame(app.Options{Seed: 5, RandomSeed: 1, Logger: zerolog.Nop()})
	require.True(t, g.StartGame())
	out := &fakeOut{}
	p := NewPublisher(out, 0)

	_, err := p.Publish(g, time.Now())
	require.NoError(t, err)
	require.Len(t, out.maps, 1)
	assert.NotEmpty(t, out.maps[0].(app.MapView).Path)
	assert.Equal(t, "playing", out.frames[0].Payload.(app.Snapshot).State)
}
