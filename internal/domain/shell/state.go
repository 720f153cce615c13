package shell

import (
	"sync"

	"go.uber.org/zap"
)

// BootState is the phase of the boot sequence
type BootState string

const (
	BootOff     BootState = "off"
	BootBooting BootState = "booting"
	BootBooted  BootState = "booted"
)

// Snapshot is a point-in-time copy of the flags
type Snapshot struct {
	Boot        BootState `json:"boot"`
	PaletteOpen bool      `json:"palette_open"`
}

// State holds the desktop's process-wide UI flags
type State struct {
	mu          sync.RWMutex
	boot        BootState
	paletteOpen bool
	logger      *zap.Logger
}

// NewState creates powered-off state
func NewState(logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &State{boot: BootOff, logger: logger}
}

// StartBoot enters the booting phase from any phase, so a booted desktop
// can be rebooted.
func (s *State) StartBoot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transition(BootBooting)
}

// FinishBoot enters the booted phase. Finishing without a start is allowed
// and skips the boot animation.
func (s *State) FinishBoot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transition(BootBooted)
}

// TogglePalette flips command palette visibility and returns the new value
func (s *State) TogglePalette() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paletteOpen = !s.paletteOpen
	return s.paletteOpen
}

// ClosePalette hides the command palette
func (s *State) ClosePalette() {
	s.mu.Lock()
	s.paletteOpen = false
	s.mu.Unlock()
}

// Snapshot returns the current flags
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Boot: s.boot, PaletteOpen: s.paletteOpen}
}

// transition sets the boot phase (must hold mu)
func (s *State) transition(to BootState) {
	if s.boot == to {
		return
	}
	s.logger.Debug("Boot phase changed",
		zap.String("from", string(s.boot)),
		zap.String("to", string(to)),
	)
	s.boot = to
}
