package core

import (
	"sync"
	"time"
)

// room holds one broadcast domain. members is the presence list, ordered
// by join time and unique per display name. subs is the delivery set: every
// connection that ever joined and has not left. The two diverge when a
// later join reuses a display name — the shadowed connection loses its
// membership entry but keeps receiving broadcasts.
type room struct {
	mu         sync.Mutex
	members    []Member
	subs       map[string]struct{}
	emptySince time.Time
	dead       bool
}

func (rm *room) snapshot() []Member {
	out := make([]Member, len(rm.members))
	copy(out, rm.members)
	return out
}

func (rm *room) markOccupancy(now time.Time) {
	if len(rm.subs) == 0 {
		if rm.emptySince.IsZero() {
			rm.emptySince = now
		}
	} else {
		rm.emptySince = time.Time{}
	}
}

// RoomInfo is a read-only summary for listing rooms.
type RoomInfo struct {
	Name    string
	Members int
}

// Directory maps room names to member sets. Mutations to a single room are
// serialized by that room's own mutex; different rooms proceed in parallel.
// Rooms are created lazily on first join and are only ever removed by
// SweepEmpty, never by Join/Leave themselves.
type Directory struct {
	mu    sync.RWMutex
	rooms map[string]*room
	now   func() time.Time
}

// NewDirectory constructs an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		rooms: make(map[string]*room),
		now:   time.Now,
	}
}

// get returns the named room, creating it if absent. The returned room is
// locked; the caller must unlock it. Rooms that died under a concurrent
// sweep are retried so a join never lands in a removed room.
func (d *Directory) get(name string) *room {
	for {
		d.mu.Lock()
		rm, ok := d.rooms[name]
		if !ok {
			rm = &room{subs: make(map[string]struct{})}
			d.rooms[name] = rm
		}
		d.mu.Unlock()

		rm.mu.Lock()
		if !rm.dead {
			return rm
		}
		rm.mu.Unlock()
	}
}

// peek returns the named room without creating it.
func (d *Directory) peek(name string) (*room, bool) {
	d.mu.RLock()
	rm, ok := d.rooms[name]
	d.mu.RUnlock()
	return rm, ok
}

// Join subscribes the connection to the room and inserts its membership,
// displacing any existing membership under the same display name. The
// displaced connection is not notified and stays subscribed. Returns the
// resulting presence snapshot.
func (d *Directory) Join(roomName, displayName, connID string) []Member {
	rm := d.get(roomName)
	defer rm.mu.Unlock()

	kept := rm.members[:0]
	for _, m := range rm.members {
		if m.Username != displayName {
			kept = append(kept, m)
		}
	}
	rm.members = append(kept, Member{Username: displayName, ConnID: connID})
	rm.subs[connID] = struct{}{}
	rm.markOccupancy(d.now())

	return rm.snapshot()
}

// Leave removes the connection's subscription and membership, if present.
// Disconnect-before-join is legal: leaving a room one never joined, or a
// room that does not exist, is a no-op returning the unchanged snapshot.
func (d *Directory) Leave(roomName, connID string) []Member {
	rm, ok := d.peek(roomName)
	if !ok {
		return nil
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	delete(rm.subs, connID)
	kept := rm.members[:0]
	for _, m := range rm.members {
		if m.ConnID != connID {
			kept = append(kept, m)
		}
	}
	rm.members = kept
	rm.markOccupancy(d.now())

	return rm.snapshot()
}

// Members returns the room's presence snapshot. The snapshot reflects a
// state that existed at some point during the call.
func (d *Directory) Members(roomName string) []Member {
	rm, ok := d.peek(roomName)
	if !ok {
		return nil
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()
	return rm.snapshot()
}

// Subscribers returns the connection ids broadcasts fan out to. This is a
// superset of the presence list when memberships have been displaced.
func (d *Directory) Subscribers(roomName string) []string {
	rm, ok := d.peek(roomName)
	if !ok {
		return nil
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	ids := make([]string, 0, len(rm.subs))
	for id := range rm.subs {
		ids = append(ids, id)
	}
	return ids
}

// Rooms lists all rooms with their current member counts.
func (d *Directory) Rooms() []RoomInfo {
	d.mu.RLock()
	names := make([]string, 0, len(d.rooms))
	for name := range d.rooms {
		names = append(names, name)
	}
	d.mu.RUnlock()

	out := make([]RoomInfo, 0, len(names))
	for _, name := range names {
		rm, ok := d.peek(name)
		if !ok {
			continue
		}
		rm.mu.Lock()
		if !rm.dead {
			out = append(out, RoomInfo{Name: name, Members: len(rm.members)})
		}
		rm.mu.Unlock()
	}
	return out
}

// Exists reports whether the room has been created.
func (d *Directory) Exists(roomName string) bool {
	_, ok := d.peek(roomName)
	return ok
}

// SweepEmpty removes rooms that have had no subscribers for longer than
// grace, and returns how many were evicted.
func (d *Directory) SweepEmpty(grace time.Duration) int {
	cutoff := d.now().Add(-grace)

	d.mu.Lock()
	defer d.mu.Unlock()

	evicted := 0
	for name, rm := range d.rooms {
		rm.mu.Lock()
		expired := len(rm.subs) == 0 && !rm.emptySince.IsZero() && rm.emptySince.Before(cutoff)
		if expired {
			rm.dead = true
			delete(d.rooms, name)
			evicted++
		}
		rm.mu.Unlock()
	}
	return evicted
}
