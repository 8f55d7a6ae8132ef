// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package renderer builds the presentation chain on a negotiated device
// and drives the per-frame encode, submit and present cycle.
package renderer

import (
	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/strobe/core"
)

// Swapchain owns the surface configuration. The target format is
// queried once at construction and kept for the swapchain's lifetime;
// every reconfiguration reuses it.
type Swapchain struct {
	surface core.Surface
	adapter core.Adapter
	device  core.Device

	format      core.TextureFormat
	presentMode core.PresentMode

	// width/height is the applied configuration, reported* is the
	// drawable size last announced by the windowing layer. They drift
	// apart between a size announcement and the reconfiguration.
	width, height                 uint32
	reportedWidth, reportedHeight uint32

	outstanding *FrameToken
}

// NewSwapchain queries the surface's preferred format and applies the
// initial configuration. The surface is presentable as soon as this
// returns.
func NewSwapchain(surface core.Surface, adapter core.Adapter, device core.Device, width, height uint32, mode core.PresentMode) (*Swapchain, error) {
	format, err := surface.PreferredFormat(adapter)
	if err != nil {
		return nil, err
	}
	if format == core.UndefinedFormat {
		return nil, core.ErrNoPresentableFormat
	}

	sc := &Swapchain{
		surface:     surface,
		adapter:     adapter,
		device:      device,
		format:      format,
		presentMode: mode,
	}
	if err := sc.configure(width, height); err != nil {
		return nil, err
	}
	return sc, nil
}

// Format returns the texture format the swapchain presents in. It does
// not change after construction.
func (s *Swapchain) Format() core.TextureFormat {
	return s.format
}

// Extent returns the dimensions the surface is currently configured for.
func (s *Swapchain) Extent() (width, height uint32) {
	return s.width, s.height
}

// NoteSize records a new drawable size without reconfiguring. Until
// Resize applies it, acquisition fails with ErrStaleConfiguration.
func (s *Swapchain) NoteSize(width, height uint32) {
	s.reportedWidth, s.reportedHeight = width, height
}

// Resize reconfigures the surface for the new dimensions immediately.
// A frame acquired under the old configuration stays valid, but trying
// to record against it fails with ErrStaleConfiguration.
func (s *Swapchain) Resize(width, height uint32) error {
	s.NoteSize(width, height)
	if width == s.width && height == s.height {
		return nil
	}
	log.WithFields(log.Fields{
		"width":  width,
		"height": height,
	}).Debug("surface resize")
	return s.configure(width, height)
}

func (s *Swapchain) configure(width, height uint32) error {
	err := s.surface.Configure(s.adapter, s.device, core.PresentationConfiguration{
		Usage:       core.RenderAttachment,
		Format:      s.format,
		Width:       width,
		Height:      height,
		PresentMode: s.presentMode,
	})
	if err != nil {
		return errors.Wrap(err, "renderer: surface configuration failed")
	}
	s.width, s.height = width, height
	s.reportedWidth, s.reportedHeight = width, height
	return nil
}

// Acquire obtains the next presentable frame as a single-use token.
// Only one token may be outstanding at a time. Acquiring while a
// reported size change has not been applied fails, a frame of the
// wrong size must never reach the screen silently.
func (s *Swapchain) Acquire() (*FrameToken, error) {
	if s.outstanding != nil && !s.outstanding.consumed {
		return nil, core.ErrFrameOutstanding
	}
	if s.reportedWidth != s.width || s.reportedHeight != s.height {
		return nil, core.ErrStaleConfiguration
	}

	frame, err := s.surface.Acquire()
	if err != nil {
		return nil, err
	}

	token := &FrameToken{
		frame:  frame,
		owner:  s,
		width:  s.width,
		height: s.height,
	}
	s.outstanding = token
	return token, nil
}

// FrameToken is a single-use handle on an acquired frame. It remembers
// the surface dimensions it was acquired under, so recording can detect
// a reconfiguration that happened in between.
type FrameToken struct {
	frame    core.Frame
	owner    *Swapchain
	width    uint32
	height   uint32
	consumed bool
}

// Frame exposes the underlying frame for encoding. It fails when the
// token was already consumed or when the swapchain was reconfigured
// after acquisition.
func (t *FrameToken) Frame() (core.Frame, error) {
	if t.consumed {
		return nil, core.ErrFramePresented
	}
	if t.width != t.owner.width || t.height != t.owner.height {
		return nil, core.ErrStaleConfiguration
	}
	return t.frame, nil
}

// Present shows the frame and consumes the token. Presenting a consumed
// token fails without touching the surface.
func (t *FrameToken) Present() error {
	if t.consumed {
		return core.ErrFramePresented
	}
	t.consumed = true
	return t.frame.Present()
}

// Discard releases the frame without presenting it and consumes the
// token. Discarding an already consumed token is a no-op.
func (t *FrameToken) Discard() {
	if t.consumed {
		return
	}
	t.consumed = true
	t.frame.Discard()
}
