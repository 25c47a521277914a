/*
Package handler provides the HTTP handlers and routing setup for the word game server.

This file contains the HandleWebSocket function, which is responsible for
upgrading the HTTP connection to WebSocket and starting the client lifecycle.
Rate limiting happens before the upgrade, in the limiter middleware applied by
the router.
*/
package handler

import (
	"net/http"

	"github.com/gorilla/websocket"

	"wordrush/internal/pkg/logx"
	"wordrush/internal/pkg/randx"
	"wordrush/internal/ws"
)

// HandleWebSocket creates an HTTP HandlerFunc that processes WebSocket connection requests.
// Each accepted connection receives a fresh connection id, which serves as the player's
// session handle for all subsequent game events.
func HandleWebSocket(deps *AppDeps, upgrader websocket.Upgrader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Error(err, "Failed to upgrade connection to WebSocket")
			return
		}

		connID := randx.ConnectionID()
		client := ws.NewClient(connID, deps.Hub, conn, deps.Coordinator)

		deps.Hub.Register(client)

		go client.WritePump()

		deps.Coordinator.Connect(connID)

		logx.Info("WebSocket connection established", "conn_id", connID)

		client.ReadPump()
	}
}
