// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"strconv"

	"github.com/gobuffalo/envy"
)

// Configuration defines a global harness configuration setting
type Configuration struct {
	Negotiation  NegotiationConfiguration
	Presentation PresentationSettings
	Geometry     GeometryConfiguration
	Loop         LoopConfiguration
}

// NegotiationConfiguration is used to configure adapter and device
// negotiation
type NegotiationConfiguration struct {
	Power PowerPreference

	// AllowFallback permits software-emulated adapters. Off by
	// default, the harness measures hardware latency.
	AllowFallback bool

	Limits Limits
}

// PresentationSettings is used to build the initial presentation
// configuration. The format is never configured here, it always comes
// from the surface's preferred-format query.
type PresentationSettings struct {
	ScreenWidth  uint32
	ScreenHeight uint32
	PresentMode  PresentMode
}

// GeometryConfiguration sizes the static stress payload
type GeometryConfiguration struct {
	// Triangles is the repeat count of the reference triangle. The
	// vertex buffer holds three times this many vertices.
	Triangles int
}

// LoopConfiguration is used to configure the frame loop
type LoopConfiguration struct {
	// MaxFrames stops the loop after this many presented frames.
	// To unlimit, set to 0.
	MaxFrames uint64
}

// DefaultConfiguration returns the reference harness setup: an 800x600
// drawable, immediate presentation and the one-million-triangle
// stress payload.
func DefaultConfiguration() Configuration {
	return Configuration{
		Negotiation: NegotiationConfiguration{
			Power:  HighPerformance,
			Limits: DefaultLimits(),
		},
		Presentation: PresentationSettings{
			ScreenWidth:  800,
			ScreenHeight: 600,
			PresentMode:  Immediate,
		},
		Geometry: GeometryConfiguration{
			Triangles: 1_000_000,
		},
	}
}

// EnvironmentConfiguration builds the harness configuration from the
// environment, falling back to the defaults for anything unset:
//
//	STROBE_WIDTH, STROBE_HEIGHT  drawable size in pixels
//	STROBE_PRESENT_MODE          immediate, mailbox or fifo
//	STROBE_TRIANGLES             stress payload triangle count
//	STROBE_MAX_FRAMES            stop after this many frames, 0 runs forever
//	STROBE_ALLOW_FALLBACK        accept software adapters when set to 1
func EnvironmentConfiguration() Configuration {
	cfg := DefaultConfiguration()

	if v, err := strconv.ParseUint(envy.Get("STROBE_WIDTH", ""), 10, 32); err == nil && v > 0 {
		cfg.Presentation.ScreenWidth = uint32(v)
	}
	if v, err := strconv.ParseUint(envy.Get("STROBE_HEIGHT", ""), 10, 32); err == nil && v > 0 {
		cfg.Presentation.ScreenHeight = uint32(v)
	}
	switch envy.Get("STROBE_PRESENT_MODE", "") {
	case "immediate":
		cfg.Presentation.PresentMode = Immediate
	case "mailbox":
		cfg.Presentation.PresentMode = Mailbox
	case "fifo":
		cfg.Presentation.PresentMode = Fifo
	}
	if v, err := strconv.Atoi(envy.Get("STROBE_TRIANGLES", "")); err == nil && v > 0 {
		cfg.Geometry.Triangles = v
	}
	if v, err := strconv.ParseUint(envy.Get("STROBE_MAX_FRAMES", ""), 10, 64); err == nil {
		cfg.Loop.MaxFrames = v
	}
	if envy.Get("STROBE_ALLOW_FALLBACK", "0") == "1" {
		cfg.Negotiation.AllowFallback = true
	}

	return cfg
}
