// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command strobeinfo prints the adapter the harness would negotiate,
// as JSON on stdout. Software adapters are accepted here, the point is
// to see what the machine has.
package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/strobe/core"
)

func init() {
	runtime.LockOSThread()
}

type report struct {
	VendorID uint32 `json:"vendorId"`
	DeviceID uint32 `json:"deviceId"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Backend  string `json:"backend"`
}

func main() {
	instance := core.NewWebGPUInstance()

	adapter, err := instance.RequestAdapter(core.AdapterOptions{
		Power:         core.HighPerformance,
		AllowFallback: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	info := adapter.Info()
	bytes, err := json.Marshal(report{
		VendorID: info.VendorID,
		DeviceID: info.DeviceID,
		Name:     info.Name,
		Kind:     info.Kind.String(),
		Backend:  info.Backend.String(),
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", bytes)
}
