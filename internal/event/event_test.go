package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher_DeliversByType(t *testing.T) {
	d := NewDispatcher()
	kills := &recorder{}
	d.Subscribe(EnemyKilled, kills)

	d.Dispatch(Event{Type: EnemyKilled, Data: RewardPayload{Gold: 10}})
	d.Dispatch(Event{Type: TowerPlaced})

	assert.Len(t, kills.got, 1)
	assert.Equal(t, RewardPayload{Gold: 10}, kills.got[0].Data)
}

func TestDispatcher_SubscribeAll(t *testing.T) {
	d := NewDispatcher()
	all := &recorder{}
	d.SubscribeAll(all)

	d.Dispatch(Event{Type: WaveStarted})
	d.Dispatch(Event{Type: GameOver})

	assert.Len(t, all.got, 2)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	subA := d.Subscribe(TowerSold, a)
	d.Subscribe(TowerSold, b)
	d.Unsubscribe(subA)

	d.Dispatch(Event{Type: TowerSold})
	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)

	assert.NotPanics(t, func() { d.Unsubscribe(subA) })
	assert.Len(t, d.listeners[TowerSold], 1)
}

func TestDispatcher_UnsubscribeListenerFunc(t *testing.T) {
	d := NewDispatcher()
	first, second := 0, 0
	sub := d.Subscribe(EnemyLeaked, ListenerFunc(func(Event) { first++ }))
	d.Subscribe(EnemyLeaked, ListenerFunc(func(Event) { second++ }))

	assert.NotPanics(t, func() { d.Unsubscribe(sub) })
	d.Dispatch(Event{Type: EnemyLeaked})
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestDispatcher_UnsubscribeAll(t *testing.T) {
	d := NewDispatcher()
	all := &recorder{}
	sub := d.SubscribeAll(all)
	d.Dispatch(Event{Type: WaveStarted})
	d.Unsubscribe(sub)
	d.Dispatch(Event{Type: WaveStarted})

	assert.Len(t, all.got, 1)
}

func TestDispatcher_ListenerFuncAndNil(t *testing.T) {
	count := 0
	d := NewDispatcher()
	d.Subscribe(EnemyLeaked, ListenerFunc(func(Event) { count++ }))
	d.Dispatch(Event{Type: EnemyLeaked})
	assert.Equal(t, 1, count)

	var none *Dispatcher
	assert.NotPanics(t, func() { none.Dispatch(Event{Type: EnemyLeaked}) })
}
