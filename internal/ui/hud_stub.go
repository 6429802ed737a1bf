//go:build !ebiten

package ui

import "github.com/NeueNeo/lenia/internal/core"

// HUD is a placeholder that satisfies the API expected by the GUI build.
type HUD struct{}

// NewHUD panics to indicate that the ebiten build tag is required.
func NewHUD(core.Sim, int) *HUD {
	panic("ui.NewHUD requires building with the 'ebiten' tag")
}

// Update is a no-op placeholder.
func (h *HUD) Update(int) {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, int, int) {}
