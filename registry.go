/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Notifier pushes room existence and occupancy to the discovery registry
// that rooms register with for listing purposes. Every call is
// fire-and-forget: failures are logged and ignored, and a room's own
// transitions never depend on the registry succeeding.
type Notifier interface {
	Register(roomID, gameType string, playerCount int, players []string, createdAt time.Time)
	Update(roomID string, playerCount int, players []string, gameStatus string)
	UpdateStatus(roomID, status string)
	Unregister(roomID string)
}

type noopNotifier struct{}

func (noopNotifier) Register(string, string, int, []string, time.Time) {}
func (noopNotifier) Update(string, int, []string, string)              {}
func (noopNotifier) UpdateStatus(string, string)                       {}
func (noopNotifier) Unregister(string)                                 {}

type registryRoom struct {
	RoomID      string    `json:"roomId"`
	GameType    string    `json:"gameType,omitempty"`
	PlayerCount int       `json:"playerCount"`
	Players     []string  `json:"players"`
	GameStatus  string    `json:"gameStatus,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

type registryStatus struct {
	Status string `json:"status"`
}

// httpNotifier talks JSON to the discovery registry over HTTP. Requests
// run off the room's processing goroutine with a short timeout so a slow
// registry never stalls a room.
type httpNotifier struct {
	baseURL string
	client  *http.Client
}

func newHTTPNotifier(baseURL string) *httpNotifier {
	return &httpNotifier{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *httpNotifier) Register(roomID, gameType string, playerCount int, players []string, createdAt time.Time) {
	go n.send(http.MethodPost, "/rooms", registryRoom{
		RoomID:      roomID,
		GameType:    gameType,
		PlayerCount: playerCount,
		Players:     players,
		CreatedAt:   createdAt,
	})
}

func (n *httpNotifier) Update(roomID string, playerCount int, players []string, gameStatus string) {
	go n.send(http.MethodPatch, "/rooms/"+roomID, registryRoom{
		RoomID:      roomID,
		PlayerCount: playerCount,
		Players:     players,
		GameStatus:  gameStatus,
	})
}

func (n *httpNotifier) UpdateStatus(roomID, status string) {
	go n.send(http.MethodPatch, "/rooms/"+roomID+"/status", registryStatus{Status: status})
}

func (n *httpNotifier) Unregister(roomID string) {
	go n.send(http.MethodDelete, "/rooms/"+roomID, nil)
}

func (n *httpNotifier) send(method, path string, payload any) {
	var body bytes.Buffer

	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			Log.WithField("error", err).Warn("Failed to encode registry payload")

			return
		}
	}

	req, err := http.NewRequest(method, n.baseURL+path, &body)
	if err != nil {
		Log.WithField("error", err).Warn("Failed to build registry request")

		return
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		Log.WithFields(logrus.Fields{
			"path":  path,
			"error": err,
		}).Warn("Discovery registry unreachable")

		return
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		Log.WithFields(logrus.Fields{
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("Discovery registry rejected notification")
	}
}
