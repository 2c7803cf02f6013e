package shooter

import "sort"

type eventKind int

const (
	eventSpawnBoss eventKind = iota
)

type scheduledEvent struct {
	at   float64 // session seconds
	kind eventKind
}

// eventQueue holds deferred actions ordered by due time. It is drained from
// inside the simulation step, so a due event can only observe a running
// session.
type eventQueue struct {
	items []scheduledEvent
}

func (q *eventQueue) schedule(at float64, kind eventKind) {
	q.items = append(q.items, scheduledEvent{at: at, kind: kind})
	sort.SliceStable(q.items, func(i, j int) bool { return q.items[i].at < q.items[j].at })
}

// due removes and returns every event with at <= now, oldest first.
func (q *eventQueue) due(now float64) []scheduledEvent {
	n := 0
	for n < len(q.items) && q.items[n].at <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	out := make([]scheduledEvent, n)
	copy(out, q.items[:n])
	q.items = append(q.items[:0], q.items[n:]...)
	return out
}

func (q *eventQueue) clear() {
	q.items = q.items[:0]
}

func (q *eventQueue) pending() int {
	return len(q.items)
}

func (s *Session) runEvents() {
	for _, ev := range s.events.due(s.now) {
		switch ev.kind {
		case eventSpawnBoss:
			if s.bossAlive() {
				s.logger.Debug("boss spawn suppressed, one is alive", "level", s.level)
				continue
			}
			s.SpawnBoss()
		}
	}
}

func (s *Session) bossAlive() bool {
	for i := range s.enemies {
		if s.enemies[i].Kind == EnemyBoss {
			return true
		}
	}
	return false
}
