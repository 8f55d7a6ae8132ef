// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/gobuffalo/envy"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/strobe/core"
	"github.com/devblok/strobe/core/renderer"
	"github.com/devblok/strobe/device"
	"github.com/devblok/strobe/model"
)

func init() {
	runtime.LockOSThread()
}

func newWindow(cfg core.PresentationSettings) *glfw.Window {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	window, err := glfw.CreateWindow(
		int(cfg.ScreenWidth),
		int(cfg.ScreenHeight),
		"Strobe", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	return window
}

// windowSignals adapts the window's event queue to the driver. Events
// are polled once per drained queue, which lands exactly between
// frames.
type windowSignals struct {
	window *glfw.Window
	queue  []renderer.Signal
}

func newWindowSignals(window *glfw.Window) *windowSignals {
	s := &windowSignals{window: window}
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if width > 0 && height > 0 {
			s.queue = append(s.queue, renderer.ResizeSignal{
				Width:  uint32(width),
				Height: uint32(height),
			})
		}
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	return s
}

// Poll implements interface
func (s *windowSignals) Poll() renderer.Signal {
	if len(s.queue) == 0 {
		glfw.PollEvents()
		if s.window.ShouldClose() {
			s.queue = append(s.queue, renderer.CloseSignal{})
		}
	}
	if len(s.queue) == 0 {
		return nil
	}
	signal := s.queue[0]
	s.queue = s.queue[1:]
	return signal
}

// stageObserver logs per-stage timings, with a summary line once the
// frame is on screen.
func stageObserver(o core.Observation) {
	log.WithFields(log.Fields{
		"frame":   o.Frame,
		"elapsed": o.Elapsed,
	}).Debug(o.Stage.String())

	if o.Stage == core.StagePresented {
		fps := 0.0
		if secs := o.Elapsed.Seconds(); secs > 0 {
			fps = float64(o.Frame) / secs
		}
		log.Infof("Frame %d | %.2f fps", o.Frame, fps)
	}
}

func main() {
	if envy.Get("STROBE_DEBUG", "0") == "1" {
		log.SetLevel(log.DebugLevel)
	}

	configuration := core.EnvironmentConfiguration()

	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()

	window := newWindow(configuration.Presentation)
	defer window.Destroy()

	instance := core.NewWebGPUInstance()
	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))

	selection, err := device.Negotiate(instance, surface, configuration.Negotiation)
	if err != nil {
		log.Fatal(err)
	}

	swapchain, err := renderer.NewSwapchain(
		surface, selection.Adapter, selection.Device,
		configuration.Presentation.ScreenWidth,
		configuration.Presentation.ScreenHeight,
		configuration.Presentation.PresentMode)
	if err != nil {
		log.Fatal(err)
	}

	source, err := core.LoadShaderSource("shader.wgsl")
	if err != nil {
		log.Fatal(err)
	}
	pipeline, err := renderer.NewPipeline(selection.Device, swapchain, "strobe", source, model.Layout())
	if err != nil {
		log.Fatal(err)
	}

	geometry, err := renderer.NewGeometry(selection.Device, "triangles",
		model.Triangles(configuration.Geometry.Triangles))
	if err != nil {
		log.Fatal(err)
	}

	driver := renderer.NewDriver(
		selection.Device, swapchain, pipeline, geometry,
		core.ObserverFunc(stageObserver), configuration.Loop)

	if err := driver.Run(newWindowSignals(window)); err != nil {
		log.Fatal(err)
	}
}
