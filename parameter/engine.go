package parameter

import "time"

// Tick timing
const (
	// TickInterval is the wall-clock period of the game loop (~60 Hz)
	TickInterval = 16 * time.Millisecond

	// MaxTickDelta clamps the simulated delta after a stall
	MaxTickDelta = 250 * time.Millisecond

	// HeadlessDelta is the fixed per-tick delta in seconds for headless runs
	HeadlessDelta = 1.0 / 60.0

	// HeadlessTicks is the default headless run length (60 s of game time)
	HeadlessTicks = 3600

	// HeadlessFireEvery fires the scripted weapon every N ticks
	HeadlessFireEvery = 6

	// HeadlessSweepTicks alternates scripted left/right movement every N ticks
	HeadlessSweepTicks = 90
)

// Input
const (
	// KeyHoldWindow keeps a key held between terminal auto-repeat events
	KeyHoldWindow = 150 * time.Millisecond
)

// Rendering
const (
	// WorldUnitsPerCellX and WorldUnitsPerCellY map world space to terminal cells
	// Cells are roughly twice as tall as wide
	WorldUnitsPerCellX = 16.0
	WorldUnitsPerCellY = 32.0
)

// Audio
const (
	AudioSampleRate   = 48000
	AudioMasterVolume = 0.7
)
