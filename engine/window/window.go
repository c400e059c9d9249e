package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// MouseButton identifies a mouse button in button callbacks.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = up/zoom in, negative = down/zoom out)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press and repeat events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseButtonCallback sets the callback for mouse button presses and releases.
	//
	// Parameters:
	//   - callback: function receiving the button, whether it was pressed, and the cursor position
	SetMouseButtonCallback(callback func(button MouseButton, pressed bool, x, y int32))

	// SetDragCallback sets the callback for cursor movement while the left button is held.
	//
	// Parameters:
	//   - callback: function receiving the cursor movement in pixels since the previous event
	SetDragCallback(callback func(dx, dy float32))

	// SetTitle replaces the text in the title bar.
	//
	// Parameters:
	//   - title: the new title
	SetTitle(title string)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources. Closing twice is a no-op.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	title string

	// Size limits applied while the user resizes the window.
	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	width  int
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate      func()
	onResize      func(width, height int)
	onScroll      func(delta float32)
	onKeyDown     func(keyCode uint32)
	onKeyUp       func(keyCode uint32)
	onMouseButton func(button MouseButton, pressed bool, x, y int32)
	onDrag        func(dx, dy float32)

	// Drag state: the left button is held and the last cursor position seen.
	dragging     bool
	lastX, lastY float64
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured and visible window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "Room Visualizer",
		maxWidth:  2560,
		maxHeight: 1600,
		minWidth:  480,
		minHeight: 320,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseButtonCallback(callback func(button MouseButton, pressed bool, x, y int32)) {
	w.onMouseButton = callback
}

func (w *engineWindow) SetDragCallback(callback func(dx, dy float32)) {
	w.onDrag = callback
}

func (w *engineWindow) SetTitle(title string) {
	w.title = title
	platformSetTitle(w, title)
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// handleButton updates drag state and forwards the event.
func (w *engineWindow) handleButton(button MouseButton, pressed bool, x, y float64) {
	if button == MouseButtonLeft {
		w.dragging = pressed
		w.lastX, w.lastY = x, y
	}
	if w.onMouseButton != nil {
		w.onMouseButton(button, pressed, int32(x), int32(y))
	}
}

// handleCursor turns cursor movement into drag deltas while the left button is held.
func (w *engineWindow) handleCursor(x, y float64) {
	if !w.dragging {
		return
	}
	dx, dy := x-w.lastX, y-w.lastY
	w.lastX, w.lastY = x, y
	if w.onDrag != nil && (dx != 0 || dy != 0) {
		w.onDrag(float32(dx), float32(dy))
	}
}
