// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestConvertAdapterInfo(t *testing.T) {
	info := convertAdapterInfo(wgpu.AdapterInfo{
		VendorId:    0x10de,
		DeviceId:    0x2204,
		Name:        "test gpu",
		AdapterType: wgpu.AdapterTypeDiscreteGPU,
		BackendType: wgpu.BackendTypeVulkan,
	})

	if info.VendorID != 0x10de || info.DeviceID != 0x2204 {
		t.Errorf("identity mapped to %04x:%04x", info.VendorID, info.DeviceID)
	}
	if info.Name != "test gpu" {
		t.Errorf("name mapped to %q", info.Name)
	}
	if info.Kind != DiscreteDevice {
		t.Errorf("adapter type mapped to %s", info.Kind)
	}
	if info.Backend != Vulkan {
		t.Errorf("backend type mapped to %s", info.Backend)
	}
}

func TestConvertAdapterInfoKinds(t *testing.T) {
	cases := []struct {
		in   wgpu.AdapterType
		want DeviceKind
	}{
		{wgpu.AdapterTypeDiscreteGPU, DiscreteDevice},
		{wgpu.AdapterTypeIntegratedGPU, IntegratedDevice},
		{wgpu.AdapterTypeCPU, SoftwareDevice},
		{wgpu.AdapterTypeUnknown, UnknownDevice},
	}
	for _, c := range cases {
		got := convertAdapterInfo(wgpu.AdapterInfo{AdapterType: c.in})
		if got.Kind != c.want {
			t.Errorf("adapter type %v mapped to %s, expected %s", c.in, got.Kind, c.want)
		}
	}
}

func TestConvertAdapterInfoBackends(t *testing.T) {
	cases := []struct {
		in   wgpu.BackendType
		want Backend
	}{
		{wgpu.BackendTypeVulkan, Vulkan},
		{wgpu.BackendTypeMetal, Metal},
		{wgpu.BackendTypeD3D12, D3D12},
		{wgpu.BackendTypeD3D11, D3D11},
		{wgpu.BackendTypeOpenGL, OpenGL},
		{wgpu.BackendTypeOpenGLES, OpenGL},
		{wgpu.BackendTypeWebGPU, WebGPU},
		{wgpu.BackendTypeNull, UnknownBackend},
	}
	for _, c := range cases {
		got := convertAdapterInfo(wgpu.AdapterInfo{BackendType: c.in})
		if got.Backend != c.want {
			t.Errorf("backend type %v mapped to %s, expected %s", c.in, got.Backend, c.want)
		}
	}
}
