// internal/feed/publisher.go
package feed

import (
	"time"

	"go-neon-defense/internal/app"
)

// Source — то, что публикатор читает из игры.
type Source interface {
	Snapshot() app.Snapshot
	MapView() app.MapView
}

// Broadcaster — получатель сообщений.
type Broadcaster interface {
	PublishMap(payload any) error
	Broadcast(msg Message) error
}

// Publisher шлёт кадры не чаще interval и карту при её смене.
// Вызывается из того же потока, что двигает симуляцию.
type Publisher struct {
	out      Broadcaster
	interval time.Duration

	last    time.Time
	mapSeed uint32
	level   int
	sent    bool
}

func NewPublisher(out Broadcaster, interval time.Duration) *Publisher {
	return &Publisher{out: out, interval: interval}
}

// Publish отправляет кадр, если с прошлого прошло не меньше interval.
// Возвращает true, если кадр ушёл.
func (p *Publisher) Publish(src Source, now time.Time) (bool, error) {
	if p.sent && now.Sub(p.last) < p.interval {
		return false, nil
	}
	frame := src.Snapshot()

	m := src.MapView()
	if !p.sent || m.Seed != p.mapSeed || frame.Level != p.level {
		if err := p.out.PublishMap(m); err != nil {
			return false, err
		}
		p.mapSeed = m.Seed
		p.level = frame.Level
	}

	if err := p.out.Broadcast(Message{Type: TypeFrame, Payload: frame}); err != nil {
		return false, err
	}
	p.last = now
	p.sent = true
	return true, nil
}
