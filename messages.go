/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"encoding/json"
	"time"
)

// Envelope is the wire format in both directions: a type tag, an optional
// payload, and an optional timestamp.
type Envelope struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp int64           `json:"timestamp,omitempty"`
}

type outMessage struct {
	Type      string `json:"type"`
	Data      any    `json:"data,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// marshalMessage serializes an outbound envelope exactly once, so a
// broadcast can reuse the same bytes for every connection.
func marshalMessage(msgType string, data any) ([]byte, error) {
	return json.Marshal(outMessage{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	})
}

// RoomView is the client-facing snapshot of a room, included in join and
// roster-change events so every client can render the full current state.
type RoomView struct {
	Code       string       `json:"code"`
	GameType   string       `json:"gameType"`
	Status     string       `json:"status"`
	HostID     string       `json:"hostId"`
	Players    []*Player    `json:"players"`
	Spectators []*Spectator `json:"spectators"`
	Game       any          `json:"game"`
}

type identityData struct {
	You       string    `json:"you"`
	Spectator bool      `json:"spectator"`
	Room      *RoomView `json:"room"`
}

type rosterEventData struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Room *RoomView `json:"room"`
}

type hostEventData struct {
	HostID string `json:"hostId"`
}

type chatHistoryData struct {
	Messages []ChatMessage `json:"messages"`
}

type errorData struct {
	Message string `json:"message"`
}

// PlayerScore is one entry of a game's final ranking.
type PlayerScore struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// GameEnded is the uniform end-of-game payload every handler emits,
// regardless of its own scoring model, so a single generic display can
// render any game's result.
type GameEnded struct {
	Message      string         `json:"message"`
	Winners      []string       `json:"winners,omitempty"`
	Scores       map[string]int `json:"scores"`
	FinalScores  []PlayerScore  `json:"finalScores,omitempty"`
	RoundResults any            `json:"roundResults,omitempty"`
}
