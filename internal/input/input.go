package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// KeyState is the per-frame state of a key or button
type KeyState int

const (
	KeyUp      KeyState = iota
	KeyPressed          // went down this frame
	KeyDown             // held since an earlier frame
)

func (s KeyState) String() string {
	switch s {
	case KeyPressed:
		return "pressed"
	case KeyDown:
		return "down"
	default:
		return "up"
	}
}

// NextKeyState advances s by one frame given whether the key is down now
func NextKeyState(s KeyState, down bool) KeyState {
	if !down {
		return KeyUp
	}
	if s == KeyUp {
		return KeyPressed
	}
	return KeyDown
}

// Action represents a logical demo action, not a physical key
type Action int

const (
	ActionToggleDebug Action = iota
	ActionToggleOverlay
	ActionReset
	ActionZoomIn
	ActionZoomOut
	ActionRotateLeft
	ActionRotateRight
	ActionQuit
	ActionMouseLeft
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	"ToggleDebug",
	"ToggleOverlay",
	"Reset",
	"ZoomIn",
	"ZoomOut",
	"RotateLeft",
	"RotateRight",
	"Quit",
	"MouseLeft",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// Manager maps physical keys and buttons to actions. GLFW callbacks
// record raw up/down events; Poll turns them into one KeyState per
// action once per frame.
type Manager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Mouse button to action mapping
	mouseButtonToActions map[glfw.MouseButton][]Action

	// Raw state as reported by the callbacks
	down [ActionCount]bool

	// Set on a press event and cleared by Poll, so a tap shorter than a
	// frame still shows up as KeyPressed
	tapped [ActionCount]bool

	// Polled state, stable for the rest of the frame
	states [ActionCount]KeyState

	cursorX, cursorY float64
}

// NewManager creates a Manager with the default bindings
func NewManager() *Manager {
	m := &Manager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	m.BindKey(glfw.KeyG, ActionToggleDebug)
	m.BindKey(glfw.KeyO, ActionToggleOverlay)
	m.BindKey(glfw.KeyR, ActionReset)
	m.BindKey(glfw.KeyW, ActionZoomIn)
	m.BindKey(glfw.KeyS, ActionZoomOut)
	m.BindKey(glfw.KeyA, ActionRotateLeft)
	m.BindKey(glfw.KeyD, ActionRotateRight)
	m.BindKey(glfw.KeyQ, ActionQuit)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	m.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)

	return m
}

// BindKey binds a physical key to a logical action
func (m *Manager) BindKey(key glfw.Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action
func (m *Manager) BindMouseButton(button glfw.MouseButton, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	m.mouseButtonToActions[button] = append(m.mouseButtonToActions[button], action)
}

// HandleKeyEvent records a key event. Repeat counts as held.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.apply(m.keyToActions[key], action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent records a mouse button event
func (m *Manager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.apply(m.mouseButtonToActions[button], action == glfw.Press)
}

func (m *Manager) apply(actions []Action, isDown bool) {
	for _, act := range actions {
		if isDown && !m.down[act] {
			m.tapped[act] = true
		}
		m.down[act] = isDown
	}
}

// HandleCursorEvent records the cursor position in window coordinates
func (m *Manager) HandleCursorEvent(x, y float64) {
	m.mu.Lock()
	m.cursorX, m.cursorY = x, y
	m.mu.Unlock()
}

// SetCallbacks installs the key, mouse button and cursor callbacks on window.
// Call once during initialization.
func (m *Manager) SetCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		m.HandleCursorEvent(x, y)
	})
}

// Poll advances every action by one frame. Call once per frame after
// glfw.PollEvents.
func (m *Manager) Poll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range ActionCount {
		m.states[i] = NextKeyState(m.states[i], m.down[i] || m.tapped[i])
		m.tapped[i] = false
	}
}

// State returns the polled state of an action
func (m *Manager) State(action Action) KeyState {
	if action < 0 || action >= ActionCount {
		return KeyUp
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.states[action]
}

// Pressed reports whether the action went down this frame
func (m *Manager) Pressed(action Action) bool {
	return m.State(action) == KeyPressed
}

// Held reports whether the action is down, new or not
func (m *Manager) Held(action Action) bool {
	return m.State(action) != KeyUp
}

// Cursor returns the last cursor position in window coordinates
func (m *Manager) Cursor() (float64, float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cursorX, m.cursorY
}
