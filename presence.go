/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"time"
)

const maxChatHistory = 50

// Player is a participant that joined before the game started.
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	Connected bool      `json:"connected"`
	JoinedAt  time.Time `json:"joinedAt"`
	IsHost    bool      `json:"isHost"`
}

// Spectator is a connection that arrived after game start. Spectators are
// shown the room but never mutate game state.
type Spectator struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	Connected bool      `json:"connected"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// ChatMessage is one entry of a room's bounded chat log.
type ChatMessage struct {
	SenderID  string `json:"senderId"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// roster tracks a room's players, spectators, and chat log. It is owned by
// the room's actor goroutine and never accessed from outside it.
type roster struct {
	players    map[string]*Player
	spectators map[string]*Spectator
	chat       []ChatMessage
}

func newRoster() *roster {
	return &roster{
		players:    make(map[string]*Player),
		spectators: make(map[string]*Spectator),
	}
}

func (r *roster) addPlayer(p *Player) {
	r.players[p.ID] = p
}

func (r *roster) addSpectator(s *Spectator) {
	r.spectators[s.ID] = s
}

func (r *roster) removePlayer(id string) *Player {
	p, ok := r.players[id]
	if !ok {
		return nil
	}

	delete(r.players, id)

	return p
}

func (r *roster) removeSpectator(id string) *Spectator {
	s, ok := r.spectators[id]
	if !ok {
		return nil
	}

	delete(r.spectators, id)

	return s
}

// earliestJoined returns the remaining player with the smallest JoinedAt,
// used for deterministic host reassignment. Ties break toward the smaller
// id so the result is stable.
func (r *roster) earliestJoined() *Player {
	var earliest *Player

	for _, p := range r.players {
		switch {
		case earliest == nil:
			earliest = p
		case p.JoinedAt.Before(earliest.JoinedAt):
			earliest = p
		case p.JoinedAt.Equal(earliest.JoinedAt) && p.ID < earliest.ID:
			earliest = p
		}
	}

	return earliest
}

// displayInfo resolves a sender's name and icon from either roster.
func (r *roster) displayInfo(id string) (string, string, bool) {
	if p, ok := r.players[id]; ok {
		return p.Name, p.Icon, true
	}

	if s, ok := r.spectators[id]; ok {
		return s.Name, s.Icon, true
	}

	return "", "", false
}

// appendChat adds a message to the chat log, evicting the oldest entry
// once the log holds maxChatHistory messages.
func (r *roster) appendChat(msg ChatMessage) {
	r.chat = append(r.chat, msg)

	if len(r.chat) > maxChatHistory {
		r.chat = r.chat[len(r.chat)-maxChatHistory:]
	}
}

func (r *roster) playerList() []*Player {
	list := make([]*Player, 0, len(r.players))
	for _, p := range r.players {
		list = append(list, p)
	}

	return list
}

func (r *roster) spectatorList() []*Spectator {
	list := make([]*Spectator, 0, len(r.spectators))
	for _, s := range r.spectators {
		list = append(list, s)
	}

	return list
}

func (r *roster) playerNames() []string {
	names := make([]string, 0, len(r.players))
	for _, p := range r.players {
		names = append(names, p.Name)
	}

	return names
}
