package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Audio
	SampleRate     = 44100
	SpeakerBuffer  = time.Second / 20
	VisualRingSize = 8192
	MaxVoices      = 16
	ToneVolume     = -2.5 // log2 gain
	ToneAttack     = 4 * time.Millisecond
	ToneRelease    = 20 * time.Millisecond

	// HUD
	ScopeSamples = 512
	ScopeWidth   = 160
	ScopeHeight  = 32
	HUDPadding   = 12

	// Keyboard panel steps
	LimitStep = 10
	TailStep  = 1
	SpeedStep = 0.1

	// Background colour shift per frame
	ColorShiftSpeed = 0.0005
)
