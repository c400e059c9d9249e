package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-roomviz/common"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/animator"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/profiler"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/renderer"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/room"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/scene"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/scheduler"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/window"
)

const windowTitle = "Room Visualizer"

// Free-view tuning for the default camera controller.
const (
	pivotClearance float32 = 0.25 // closest the camera gets to its pivot
	zoomSpeed      float32 = 0.25 // meters per scroll step
	walkSpeed      float32 = 0.1  // meters per unit of Walk input
)

// SceneHandles groups the collaborators the engine drives every frame.
// Any handle may be nil; operations that need a missing handle are skipped.
type SceneHandles struct {
	Scene    scene.Scene
	Camera   camera.Camera
	Renderer renderer.Renderer
}

// pendingChanges accumulates input between frames. Later dimension and view requests
// replace earlier ones; orbit, zoom and walk deltas add up.
type pendingChanges struct {
	dimensions *room.Dimensions
	view       *room.View

	orbitAzimuth   float32
	orbitElevation float32
	zoom           float32
	walkForward    float32
	walkRight      float32
}

func (p pendingChanges) hasUserInput() bool {
	return p.orbitAzimuth != 0 || p.orbitElevation != 0 || p.zoom != 0 || p.walkForward != 0 || p.walkRight != 0
}

// engine implements the Engine interface.
// Input arrives from any goroutine and is queued; Frame applies it on the frame loop.
type engine struct {
	mu      *sync.Mutex // guards pending, dimensions and view
	frameMu *sync.Mutex // serializes Frame against teardown

	handles    SceneHandles
	handlesSet bool
	scheduler  scheduler.Scheduler
	animator   animator.CameraAnimator

	defaultDimensions room.Dimensions
	defaultView       room.View
	dimensions        room.Dimensions
	view              room.View
	pending           pendingChanges

	wallThickness     float32
	animationDuration time.Duration

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderCallback   func(deltaTime float32)
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	clock            func() time.Time
	lastFrame        time.Time

	quitChannel chan struct{}
	quitOnce    sync.Once
	released    bool
}

// Engine hosts one room: it owns the scene, camera and renderer handles, the frame scheduler
// and the camera animator, and turns dimension and view changes into geometry rebuilds and
// camera moves on the frame loop.
type Engine interface {
	// Window returns the window the engine presents to, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Handles returns the scene, camera and renderer driven by the engine.
	//
	// Returns:
	//   - SceneHandles: the current handles
	Handles() SceneHandles

	// Animator returns the camera animator bound to the engine's camera and scheduler.
	//
	// Returns:
	//   - animator.CameraAnimator: the animator
	Animator() animator.CameraAnimator

	// Dimensions returns the dimensions of the room currently in the scene.
	//
	// Returns:
	//   - room.Dimensions: the applied dimensions
	Dimensions() room.Dimensions

	// View returns the view most recently applied to the camera.
	//
	// Returns:
	//   - room.View: the applied view
	View() room.View

	// OnDimensionsChange validates d and queues a rebuild for the next frame.
	// Invalid dimensions are rejected immediately and leave the scene untouched.
	//
	// Parameters:
	//   - d: the requested room dimensions
	//
	// Returns:
	//   - error: an error wrapping room.ErrInvalidDimensions, or nil
	OnDimensionsChange(d room.Dimensions) error

	// OnViewChange queues a camera move to view v for the next frame.
	// Views without a placement formula other than room.ViewFree are placed like room.ViewCorner.
	//
	// Parameters:
	//   - v: the requested view
	OnViewChange(v room.View)

	// Orbit queues a rotation of the free-view camera around the room center.
	// Ignored unless the free view is active when the frame applies it.
	//
	// Parameters:
	//   - dAzimuth: horizontal change in radians
	//   - dElevation: vertical change in radians
	Orbit(dAzimuth, dElevation float32)

	// Zoom queues a change of the free-view camera's distance from the room center.
	// Positive delta moves closer. Ignored outside the free view.
	//
	// Parameters:
	//   - delta: zoom amount
	Zoom(delta float32)

	// Walk queues a move of the free-view camera along the floor. Ignored outside the free view.
	//
	// Parameters:
	//   - forward: steps toward the view direction
	//   - right: steps to the right
	Walk(forward, right float32)

	// Reset queues the configured default dimensions and view.
	Reset()

	// Frame applies every queued change, advances the scheduler to now and renders.
	// Geometry and camera pose are both updated before the frame is drawn.
	//
	// Parameters:
	//   - now: the frame timestamp
	//
	// Returns:
	//   - error: rebuild, sync and draw errors joined together, or nil
	Frame(now time.Time) error

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderCallback registers the function called after each frame.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run drives Frame until the window closes or Quit is called.
	// Without a window it loops headless.
	Run()

	// Quit stops the frame loop and releases the scheduler, scene and renderer.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates an Engine and shows the default room from the default view.
// Missing handles are created unless WithHandles was used: a scene and camera always,
// and a WebGPU renderer when a window is attached.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:                &sync.Mutex{},
		frameMu:           &sync.Mutex{},
		defaultDimensions: room.DefaultDimensions,
		defaultView:       room.ViewCorner,
		animationDuration: animator.DefaultDuration,
		profiler:          profiler.NewProfiler(),
		clock:             time.Now,
		quitChannel:       make(chan struct{}),
	}

	for _, opt := range options {
		opt(e)
	}

	if !e.handlesSet {
		if e.handles.Scene == nil {
			e.handles.Scene = scene.NewScene("room")
		}
		if e.handles.Camera == nil {
			e.handles.Camera = camera.NewCamera(
				camera.WithController(newRoomController(e.defaultDimensions, e.defaultView)),
			)
		}
		if e.handles.Renderer == nil && e.window != nil {
			e.handles.Renderer = renderer.NewRenderer(renderer.BackendTypeWGPU, e.window)
		}
	}

	e.scheduler = scheduler.NewScheduler()
	e.animator = animator.NewCameraAnimator(e.handles.Camera, e.scheduler, animator.WithDuration(e.animationDuration))

	if r, c := e.handles.Renderer, e.handles.Camera; r != nil && c != nil {
		if w, h := r.Size(); w > 0 && h > 0 {
			c.SetAspect(float32(w) / float32(h))
		}
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			if r := e.handles.Renderer; r != nil {
				r.Resize(width, height)
			}
			if c := e.handles.Camera; c != nil && width > 0 && height > 0 {
				c.SetAspect(float32(width) / float32(height))
			}
		})
	}

	if err := e.rebuild(e.defaultDimensions); err != nil {
		panic(fmt.Sprintf("[Engine] failed to build the default room: %v", err))
	}
	e.dimensions, e.view = e.defaultDimensions, e.defaultView
	e.applyView(e.defaultView, e.defaultDimensions, e.clock(), true)
	e.updateTitle(e.defaultDimensions, e.defaultView)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Handles() SceneHandles {
	return e.handles
}

func (e *engine) Animator() animator.CameraAnimator {
	return e.animator
}

func (e *engine) Dimensions() room.Dimensions {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dimensions
}

func (e *engine) View() room.View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view
}

func (e *engine) OnDimensionsChange(d room.Dimensions) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("dimensions change: %w", err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending.dimensions = &d
	return nil
}

func (e *engine) OnViewChange(v room.View) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending.view = &v
}

func (e *engine) Orbit(dAzimuth, dElevation float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending.orbitAzimuth += dAzimuth
	e.pending.orbitElevation += dElevation
}

func (e *engine) Zoom(delta float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending.zoom += delta
}

func (e *engine) Walk(forward, right float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending.walkForward += forward
	e.pending.walkRight += right
}

func (e *engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	d, v := e.defaultDimensions, e.defaultView
	e.pending = pendingChanges{dimensions: &d, view: &v}
}

func (e *engine) Frame(now time.Time) error {
	e.frameMu.Lock()
	defer e.frameMu.Unlock()
	if e.released {
		return nil
	}

	e.mu.Lock()
	p := e.pending
	e.pending = pendingChanges{}
	dims, view := e.dimensions, e.view
	e.mu.Unlock()

	var errs []error
	moved := false
	if p.dimensions != nil && *p.dimensions != dims {
		start := time.Now()
		if err := e.rebuild(*p.dimensions); err != nil {
			errs = append(errs, err)
		} else {
			dims = *p.dimensions
			moved = true
			e.profiler.RecordRebuild(time.Since(start))
		}
	}
	if p.view != nil && *p.view != view {
		view = *p.view
		moved = true
	}
	if moved {
		e.mu.Lock()
		e.dimensions, e.view = dims, view
		e.mu.Unlock()
		e.applyView(view, dims, now, false)
		e.updateTitle(dims, view)
	}
	if p.hasUserInput() {
		e.applyUserInput(p)
	}

	e.scheduler.Advance(now)

	cam := e.handles.Camera
	if cam != nil {
		cam.Update()
	}
	if r := e.handles.Renderer; r != nil && cam != nil {
		if err := e.draw(r, cam); err != nil {
			errs = append(errs, err)
		}
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
	return errors.Join(errs...)
}

// rebuild builds the room surfaces for d and swaps them into the scene.
func (e *engine) rebuild(d room.Dimensions) error {
	surfaces, err := room.Build(d, room.WithWallThickness(e.wallThickness))
	if err != nil {
		return fmt.Errorf("rebuild %s: %w", d, err)
	}
	if s := e.handles.Scene; s != nil {
		if err := s.Apply(surfaces); err != nil {
			return fmt.Errorf("rebuild %s: %w", d, err)
		}
	}
	return nil
}

// applyView points the camera at view v of a room sized d. Scripted views animate from the
// current position unless snap is set; the free view hands the camera to the user, confined
// to the room interior at eye height.
func (e *engine) applyView(v room.View, d room.Dimensions, now time.Time, snap bool) {
	cam := e.handles.Camera
	if cam == nil {
		return
	}
	ctrl := cam.Controller()

	if !v.Scripted() {
		e.animator.SetMode(animator.ModeUserControlled)
		cam.LookAt(d.Width/2, camera.EyeHeight, d.Length/2)
		ctrl.SetBounds(camera.InteriorBounds(d.Width, d.Length))
		cam.Update()
		x, y, z := cam.Position()
		log.Printf("[Engine] %s: camera at (%.2f, %.2f, %.2f)", v.Label(), x, y, z)
		return
	}

	pose, err := room.Place(d, v)
	if err != nil {
		log.Printf("[Engine] %s: %v", v.Label(), err)
		return
	}
	e.animator.SetMode(animator.ModeScripted)
	ctrl.ClearBounds()
	if snap {
		e.animator.Cancel()
		cam.SetPosition(pose.Position[0], pose.Position[1], pose.Position[2])
		cam.LookAt(pose.LookAt[0], pose.LookAt[1], pose.LookAt[2])
		cam.Update()
	} else {
		e.animator.Animate(pose, now)
	}
	log.Printf("[Engine] %s: camera to (%.2f, %.2f, %.2f) looking at (%.2f, %.2f, %.2f)",
		v.Label(),
		pose.Position[0], pose.Position[1], pose.Position[2],
		pose.LookAt[0], pose.LookAt[1], pose.LookAt[2])
}

// newRoomController builds the default camera controller for a room sized d. The pivot
// starts at the scripted look-at point, and the zoom range covers the largest room the
// dimension controls allow. A free default view starts confined to the interior.
func newRoomController(d room.Dimensions, v room.View) camera.CameraController {
	t := room.LookAtTarget(d)
	largest := common.Length3([3]float32{room.MaxWidth, room.MaxHeight, room.MaxLength})
	options := []camera.CameraControllerOption{
		camera.WithTarget(t[0], t[1], t[2]),
		camera.WithRadiusBounds(pivotClearance, 2*largest),
		camera.WithZoomSpeed(zoomSpeed),
		camera.WithPanSpeed(walkSpeed),
	}
	if !v.Scripted() {
		options = append(options, camera.WithBounds(camera.InteriorBounds(d.Width, d.Length)))
	}
	return camera.NewCameraController(options...)
}

// updateTitle shows the room details and active view in the window title.
func (e *engine) updateTitle(d room.Dimensions, v room.View) {
	if e.window == nil {
		return
	}
	e.window.SetTitle(fmt.Sprintf("%s | %s | %.1f m² | %s", windowTitle, d, d.FloorArea(), v.Label()))
}

// applyUserInput moves the free-view camera. Scripted views own the camera, so input is dropped.
func (e *engine) applyUserInput(p pendingChanges) {
	cam := e.handles.Camera
	if cam == nil || e.animator.Mode() != animator.ModeUserControlled {
		return
	}
	ctrl := cam.Controller()
	if p.orbitAzimuth != 0 || p.orbitElevation != 0 {
		ctrl.OrbitBy(p.orbitAzimuth, p.orbitElevation)
	}
	if p.zoom != 0 {
		ctrl.Zoom(p.zoom)
	}
	if p.walkForward != 0 {
		ctrl.PanForward(p.walkForward)
	}
	if p.walkRight != 0 {
		ctrl.PanRight(p.walkRight)
	}
}

func (e *engine) draw(r renderer.Renderer, cam camera.Camera) error {
	var version uint64
	var view renderer.FrameView
	view.Camera = cam
	if s := e.handles.Scene; s != nil {
		version = s.Version()
		view.Lights = s.Lights()
		if err := r.Sync(version, s.Children()); err != nil {
			return fmt.Errorf("sync scene: %w", err)
		}
	}
	if err := r.Render(view); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (e *engine) Run() {
	e.lastFrame = e.clock()
	if e.window == nil {
		for e.step() {
		}
		return
	}
	e.window.SetUpdateCallback(func() {
		if !e.step() {
			_ = e.window.Close()
		}
	})
	e.window.ProcessMessages()
	e.Quit()
	if err := e.window.Close(); err != nil {
		log.Printf("[Engine] close window: %v", err)
	}
}

// step runs one iteration of the frame loop and reports whether the loop should continue.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) step() (ok bool) {
	select {
	case <-e.quitChannel:
		return false
	default:
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] frame loop recovered from panic: %v", r)
			e.Quit()
			ok = false
		}
	}()

	start := e.clock()
	dt := float32(start.Sub(e.lastFrame).Seconds())
	e.lastFrame = start

	if err := e.Frame(start); err != nil {
		log.Printf("[Engine] frame: %v", err)
	}
	if e.renderCallback != nil {
		e.renderCallback(dt)
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.clock().Sub(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
	return true
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)

		e.frameMu.Lock()
		defer e.frameMu.Unlock()
		e.released = true
		e.animator.Cancel()
		e.scheduler.Clear()
		if s := e.handles.Scene; s != nil {
			s.Release()
		}
		if r := e.handles.Renderer; r != nil {
			r.Release()
		}
		log.Printf("[Engine] shut down")
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetRenderCallback registers the function called after each frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}
