// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package device negotiates a rendering adapter and opens a logical
// device on it, applying the selection policy used across the project.
package device

import (
	log "github.com/sirupsen/logrus"

	"github.com/devblok/strobe/core"
)

// Descriptor describes the outcome of adapter negotiation.
type Descriptor struct {
	VendorID uint32
	DeviceID uint32
	Name     string
	Kind     core.DeviceKind
	Backend  core.Backend
}

// Selection holds the negotiated adapter and the device opened on it.
type Selection struct {
	Adapter    core.Adapter
	Device     core.Device
	Descriptor Descriptor
}

// Negotiate picks an adapter compatible with the given surface and opens
// a logical device on it with the configured limits. The adapter identity
// is logged once the pick is made, before the device open is attempted,
// so a failed open still leaves a record of what was selected.
func Negotiate(instance core.Instance, surface core.Surface, cfg core.NegotiationConfiguration) (*Selection, error) {
	adapter, err := instance.RequestAdapter(core.AdapterOptions{
		Power:             cfg.Power,
		AllowFallback:     cfg.AllowFallback,
		CompatibleSurface: surface,
	})
	if err != nil {
		return nil, err
	}

	info := adapter.Info()
	log.WithFields(log.Fields{
		"vendor":  info.VendorID,
		"device":  info.DeviceID,
		"kind":    info.Kind.String(),
		"backend": info.Backend.String(),
	}).Infof("selected adapter %s", info.Name)

	device, err := adapter.RequestDevice(core.DeviceDescriptor{
		Label:  "strobe device",
		Limits: cfg.Limits,
	})
	if err != nil {
		return nil, err
	}

	return &Selection{
		Adapter: adapter,
		Device:  device,
		Descriptor: Descriptor{
			VendorID: info.VendorID,
			DeviceID: info.DeviceID,
			Name:     info.Name,
			Kind:     info.Kind,
			Backend:  info.Backend,
		},
	}, nil
}
