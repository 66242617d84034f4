// Package memstore provides the in-process stores backing the catalog, the
// customer directory and the reservation ledger. State lives for the process
// lifetime; there is no durable persistence behind it.
package memstore

import (
	"sort"
	"sync"

	"hotel-booking/internal/domain/room"
)

// RoomCatalog is the set of bookable rooms, unique by room number.
type RoomCatalog struct {
	mu    sync.RWMutex
	rooms map[string]*room.Room
}

func NewRoomCatalog() *RoomCatalog {
	return &RoomCatalog{
		rooms: make(map[string]*room.Room),
	}
}

// Add inserts the room if no room with the same number exists. It reports
// whether the room was inserted; a duplicate number is a no-op, not an error.
func (c *RoomCatalog) Add(r *room.Room) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := r.Number().Value()
	if _, exists := c.rooms[key]; exists {
		return false
	}
	c.rooms[key] = r
	return true
}

// Find returns the room with the given number, or nil when absent.
func (c *RoomCatalog) Find(number string) *room.Room {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rooms[number]
}

// All returns a snapshot of the catalog. Order is stable (numeric room
// number) but not part of the contract.
func (c *RoomCatalog) All() []*room.Room {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rooms := make([]*room.Room, 0, len(c.rooms))
	for _, r := range c.rooms {
		rooms = append(rooms, r)
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].Number().Int() < rooms[j].Number().Int()
	})
	return rooms
}
