package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	storeTimeout = 5 * time.Second
	aiTimeout    = 60 * time.Second
)

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// StoreCtx returns a context with a standard timeout for storage operations.
func StoreCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}

// AICtx returns a context with a generous timeout for model calls.
func AICtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), aiTimeout)
}
