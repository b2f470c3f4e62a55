// internal/app/listener.go
package app

import "go-neon-defense/internal/event"

// statsListener считает убийства и утечки текущего уровня.
type statsListener struct {
	kills int
	leaks int
}

func (l *statsListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		l.kills++
	case event.EnemyLeaked:
		l.leaks++
	}
}

func (l *statsListener) reset() {
	l.kills = 0
	l.leaks = 0
}
