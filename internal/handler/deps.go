package handler

import (
	"wordrush/internal/configs"
	"wordrush/internal/game"
	"wordrush/internal/ws"
)

// AppDeps bundles the shared dependencies handed to every handler.
type AppDeps struct {
	Hub         *ws.Hub
	Coordinator *game.Coordinator
	Config      *configs.AppConfig
}
