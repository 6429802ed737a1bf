//go:build !ebiten

package ui

import "github.com/NeueNeo/lenia/internal/core"

// Overlay is a placeholder that satisfies the API expected by the GUI build.
type Overlay struct{}

// NewOverlay returns an inert overlay for headless builds.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Update is a no-op placeholder.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
