// Package monitor is a terminal view of the diagnostic stream: frame counter,
// measured frame rate and the byte window each fixture rendered. It consumes
// whatever the render loop publishes and misses frames when it falls behind.
package monitor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robmorgan/helios/engine"
)

// Run displays the diagnostic stream until the user quits or the stream closes.
// onQuit is invoked once when the user asks to leave, so the caller can shut the
// render loop down.
func Run(diag <-chan engine.Snapshot, onQuit func()) error {
	return tea.NewProgram(newModel(diag, onQuit)).Start()
}
