// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gobuffalo/packr"
)

// Shader entry points every harness shader unit must expose.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// StaticResources holds the built-in shader assets
var StaticResources packr.Box

func init() {
	StaticResources = packr.NewBox("../assets")
}

// LoadShaderSource reads one WGSL shader unit from the static
// resources. The unit is treated as opaque apart from checking that
// the expected entry points are present, a missing entry point would
// otherwise only surface as a backend compile error at pipeline
// build time.
func LoadShaderSource(name string) (string, error) {
	src, err := StaticResources.FindString(name)
	if err != nil {
		return "", errors.Wrapf(err, "core: shader %q not found", name)
	}

	for _, entry := range []string{VertexEntryPoint, FragmentEntryPoint} {
		if !strings.Contains(src, entry) {
			return "", errors.Newf("core: shader %q missing entry point %q", name, entry)
		}
	}
	return src, nil
}
