// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — уведомление для внешних слоёв (звук, частицы, интерфейс).
// Симуляция никогда не читает ответ подписчика.
type Event struct {
	Type EventType
	Data interface{} // полезная нагрузка, см. payload.go
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription — handle подписки, по нему подписчик отписывается.
type Subscription struct {
	eventType EventType
	all       bool
	id        int
}

type subscriber struct {
	id       int
	listener Listener
}

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]subscriber
	any       []subscriber
	nextID    int
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscriber),
	}
}

func (d *Dispatcher) add(listener Listener) subscriber {
	d.nextID++
	return subscriber{id: d.nextID, listener: listener}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	sub := d.add(listener)
	d.listeners[eventType] = append(d.listeners[eventType], sub)
	return Subscription{eventType: eventType, id: sub.id}
}

// SubscribeAll — подписка на все события сразу.
func (d *Dispatcher) SubscribeAll(listener Listener) Subscription {
	sub := d.add(listener)
	d.any = append(d.any, sub)
	return Subscription{all: true, id: sub.id}
}

// Unsubscribe — отписка по handle. Повторная отписка ничего не делает.
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	if sub.all {
		d.any = without(d.any, sub.id)
		return
	}
	if subs, exists := d.listeners[sub.eventType]; exists {
		d.listeners[sub.eventType] = without(subs, sub.id)
	}
}

func without(subs []subscriber, id int) []subscriber {
	for i, s := range subs {
		if s.id == id {
			return append(subs[:i:i], subs[i+1:]...)
		}
	}
	return subs
}

// Dispatch — отправка события всем подписчикам. Пустой диспетчер молча
// глотает события, так движок работает без внешних слоёв.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
	for _, s := range d.any {
		s.listener.OnEvent(event)
	}
}
