package app

import (
	"agentid/internal/domain"
	"agentid/internal/store"
)

// App holds the wired dependency graph shared by CLI subcommands.
type App struct {
	Keys   domain.KeyService
	Chains *store.ChainFileStore
}

// New builds the app from its collaborators.
func New(keys domain.KeyService, chains *store.ChainFileStore) *App {
	return &App{Keys: keys, Chains: chains}
}
