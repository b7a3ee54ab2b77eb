/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"encoding/json"
	"errors"
	"testing"
)

func newTestManager(cfg *Config, store SnapshotStore) *RoomManager {
	registry := handlerRegistry{
		"voting": newVotingHandler(cfg),
		"panic":  panicHandler{},
	}

	return newRoomManager(cfg, registry, store, &recordingNotifier{})
}

func TestUnknownGameTypeIsFatal(t *testing.T) {
	mgr := newTestManager(testConfig(), newMemoryStore())

	if _, err := mgr.room("ABCD1234", "tetris"); !errors.Is(err, ErrUnknownGameType) {
		t.Fatalf("expected ErrUnknownGameType, got %v", err)
	}

	// No room may be constructed for the failed request.
	if _, ok := mgr.rooms.Get("ABCD1234"); ok {
		t.Error("a room was created despite the unknown game type")
	}
}

func TestSameCodeResolvesToSameRoom(t *testing.T) {
	mgr := newTestManager(testConfig(), newMemoryStore())

	first, err := mgr.room("ABCD1234", "voting")
	if err != nil {
		t.Fatalf("room creation failed: %v", err)
	}

	second, err := mgr.room("ABCD1234", "voting")
	if err != nil {
		t.Fatalf("room resolution failed: %v", err)
	}

	if first != second {
		t.Error("two requests for one code produced distinct rooms")
	}
}

func TestGameTypeMismatchRejected(t *testing.T) {
	mgr := newTestManager(testConfig(), newMemoryStore())

	if _, err := mgr.room("ABCD1234", "voting"); err != nil {
		t.Fatalf("room creation failed: %v", err)
	}

	if _, err := mgr.room("ABCD1234", "panic"); !errors.Is(err, ErrGameTypeMismatch) {
		t.Fatalf("expected ErrGameTypeMismatch, got %v", err)
	}
}

func TestNewRoomCodeShape(t *testing.T) {
	mgr := newTestManager(testConfig(), newMemoryStore())

	first := mgr.newRoomCode()
	second := mgr.newRoomCode()

	if len(first) != 8 || len(second) != 8 {
		t.Fatalf("expected 8-character codes, got %q and %q", first, second)
	}

	if first == second {
		t.Error("consecutive room codes collided")
	}
}

func TestColdStartRestoresGameStateButNotRoster(t *testing.T) {
	store := newMemoryStore()

	game, err := json.Marshal(&VotingState{
		GamePhase:    PhaseResults,
		CurrentRound: 1,
		TotalRounds:  3,
		Questions:    defaultQuestions[:3],
		RoundResults: []RoundResult{{Round: 1, Winner: "Pizza"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	snap := &Snapshot{
		GameType: "voting",
		Status:   StatusStarted,
		HostID:   "gone",
		Players:  []*Player{{ID: "gone", Name: "Ghost", IsHost: true}},
		Chat: []ChatMessage{
			{SenderID: "gone", Name: "Ghost", Text: "hello", Timestamp: 1},
		},
		Game: game,
	}

	if err := store.Save("REST1234", snap); err != nil {
		t.Fatal(err)
	}

	mgr := newTestManager(testConfig(), store)

	room, err := mgr.room("REST1234", "voting")
	if err != nil {
		t.Fatalf("room resolution failed: %v", err)
	}

	if room.Status != StatusStarted {
		t.Errorf("expected restored status %q, got %q", StatusStarted, room.Status)
	}

	if len(room.roster.chat) != 1 {
		t.Errorf("expected restored chat log, got %d entries", len(room.roster.chat))
	}

	st := room.Game.(*VotingState)

	if st.GamePhase != PhaseResults || len(st.RoundResults) != 1 {
		t.Errorf("game state not restored: phase %q, %d results", st.GamePhase, len(st.RoundResults))
	}

	// Dropped connections cannot resume, so roster entries do not survive
	// a cold start.
	if len(room.roster.players) != 0 {
		t.Errorf("stale roster entries restored: %d", len(room.roster.players))
	}

	if room.HostID != "" {
		t.Errorf("stale host id restored: %q", room.HostID)
	}
}
