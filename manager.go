/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"crypto/rand"
	"sync"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// RoomManager holds the live room set keyed by room code. Rooms sit in an
// expiring cache with the configured session timeout; processing any
// command refreshes a room's deadline, and eviction stops the actor.
type RoomManager struct {
	mu       sync.Mutex
	rooms    *cache.Cache
	registry handlerRegistry
	store    SnapshotStore
	notifier Notifier
}

func newRoomManager(cfg *Config, registry handlerRegistry, store SnapshotStore, notifier Notifier) *RoomManager {
	c := cache.New(cache.NoExpiration, 0)
	if cfg.sessionTimeout > 0 {
		c = cache.New(cfg.sessionTimeout, cfg.sessionTimeout/2)
	}

	c.OnEvicted(func(code string, v any) {
		room, ok := v.(*Room)
		if !ok {
			return
		}

		room.stop()

		Log.WithField("room", code).Debug("Reclaimed idle room")
	})

	return &RoomManager{
		rooms:    c,
		registry: registry,
		store:    store,
		notifier: notifier,
	}
}

// room resolves or creates the actor for a room code. The first request
// for a code loads a persisted snapshot if one exists; an unregistered
// game type is fatal and no room is created.
func (m *RoomManager) room(code, gameType string) (*Room, error) {
	h, err := m.registry.lookup(gameType)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.rooms.Get(code); ok {
		existing := v.(*Room)

		if existing.GameType != gameType {
			return nil, ErrGameTypeMismatch
		}

		return existing, nil
	}

	var snap *Snapshot

	if m.store != nil {
		snap, err = m.store.Load(code)
		if err != nil {
			Log.WithFields(logrus.Fields{
				"room":  code,
				"error": err,
			}).Warn("Failed to load room snapshot, starting fresh")

			snap = nil
		}

		if snap != nil && snap.GameType != gameType {
			return nil, ErrGameTypeMismatch
		}
	}

	r := newRoom(code, h, m.store, m.notifier, snap)
	r.onActivity = func() {
		m.rooms.SetDefault(code, r)
	}

	m.rooms.SetDefault(code, r)

	go r.run()

	return r, nil
}

// newRoomCode generates a crypto-random room code and ensures it doesn't
// collide with an existing room.
func (m *RoomManager) newRoomCode() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}

		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}

		code := string(out)

		if _, exists := m.rooms.Get(code); !exists {
			return code
		}
	}
}
