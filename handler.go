/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
	"sort"
	"time"
)

// GameState is the handler-owned payload composed with the fixed room
// fields. Each handler supplies its own concrete struct; the session only
// needs the current phase name, for tagging scheduled work.
type GameState interface {
	Phase() string
}

// Handler implements one game type. The session actor owns connections,
// rosters, chat, and room management; everything else is delegated here.
type Handler interface {
	// GameType is the registry key and URL path segment for this game.
	GameType() string

	// NewState returns a fresh game state, merged into the room at
	// creation time. It must return a pointer so persisted snapshots can
	// be decoded back into it.
	NewState() GameState

	// OnStart performs the waiting-to-started transition. Only the host
	// may trigger it.
	OnStart(ctx *HandlerContext)

	// OnMessage routes every inbound type the session does not handle
	// directly.
	OnMessage(ctx *HandlerContext, env Envelope)
}

// DisconnectHandler is implemented by handlers that react to a player
// departing mid-game, e.g. to re-check a phase completion quota against
// the smaller roster.
type DisconnectHandler interface {
	OnPlayerDisconnect(ctx *HandlerContext, playerID string)
}

// CleanupHandler is implemented by handlers holding resources beyond
// room-scheduled timers; it runs once at room teardown.
type CleanupHandler interface {
	Cleanup(room *Room)
}

type handlerRegistry map[string]Handler

// newHandlerRegistry builds the static game type registry. Adding a game
// means adding its handler here; the set is fixed for the process lifetime
// and validated before any routes are mounted.
func newHandlerRegistry(cfg *Config) handlerRegistry {
	reg := make(handlerRegistry)

	for _, h := range []Handler{
		newVotingHandler(cfg),
	} {
		if _, dup := reg[h.GameType()]; dup {
			panic(fmt.Sprintf("duplicate handler registered for game type %q", h.GameType()))
		}

		reg[h.GameType()] = h
	}

	return reg
}

func (r handlerRegistry) lookup(gameType string) (Handler, error) {
	h, ok := r[gameType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGameType, gameType)
	}

	return h, nil
}

func (r handlerRegistry) types() []string {
	types := make([]string, 0, len(r))
	for t := range r {
		types = append(types, t)
	}

	sort.Strings(types)

	return types
}

// HandlerContext is handed to every handler hook. It exposes the mutable
// room state plus the callbacks a handler needs; all calls happen on the
// room's single processing goroutine.
type HandlerContext struct {
	Room      *Room
	SenderID  string
	Sender    *client
	Spectator bool
}

func (hc *HandlerContext) Players() map[string]*Player {
	return hc.Room.roster.players
}

func (hc *HandlerContext) Spectators() map[string]*Spectator {
	return hc.Room.roster.spectators
}

func (hc *HandlerContext) HostID() string {
	return hc.Room.HostID
}

// Broadcast serializes once and fans out to every open connection except
// the excluded one.
func (hc *HandlerContext) Broadcast(msgType string, data any, exclude *client) {
	hc.Room.broadcast(msgType, data, exclude)
}

func (hc *HandlerContext) SendTo(c *client, msgType string, data any) {
	hc.Room.sendTo(c, msgType, data)
}

// SendError replies to the triggering connection only; room state is left
// unchanged by the caller.
func (hc *HandlerContext) SendError(message string) {
	if hc.Sender != nil {
		hc.Room.sendTo(hc.Sender, "error", errorData{Message: message})
	}
}

// SaveState persists the room snapshot. Handlers call it once after a
// batch of related mutations; the session never auto-detects dirty state.
func (hc *HandlerContext) SaveState() {
	hc.Room.saveState()
}

// SetStatus updates the room status and pushes it to the discovery
// registry, fire-and-forget.
func (hc *HandlerContext) SetStatus(status string) {
	hc.Room.Status = status
	hc.Room.notifier.UpdateStatus(hc.Room.Code, status)
}

// Schedule runs fn on the room's processing goroutine after d, but only if
// the game is still in the phase the task was scheduled under; a stale
// timer firing after a phase change is a no-op. Pending tasks are
// cancelled on phase transition (via CancelTimers) and on room teardown.
func (hc *HandlerContext) Schedule(d time.Duration, phase string, fn func(*HandlerContext)) {
	hc.Room.schedule(d, phase, fn)
}

func (hc *HandlerContext) CancelTimers() {
	hc.Room.cancelTimers()
}
