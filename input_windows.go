package liveresize

import (
	"strings"

	"github.com/mmngadi/go-liveresize/internal/win32"
)

// Virtual-key codes usable as the fullscreen toggle.
const (
	VKF11    = 0x7A
	VKF12    = 0x7B
	VKReturn = 0x0D
	VKMenu   = 0x12 // Alt
)

// KeyToggle polls a virtual key and reports edge-triggered presses: true
// exactly once per physical press, on the frame the key goes down.
type KeyToggle struct {
	vk   int
	mod  int // optional modifier that must be held, 0 for none
	held bool
}

// NewKeyToggle returns a toggle on the given virtual key. Non-positive
// codes fall back to F11.
func NewKeyToggle(vk int) *KeyToggle {
	if vk <= 0 {
		vk = VKF11
	}
	return &KeyToggle{vk: vk}
}

// NewKeyToggleFor maps a config key name (f11, f12, alt+enter) to a
// toggle. Unknown names fall back to F11.
func NewKeyToggleFor(name string) *KeyToggle {
	switch strings.ToLower(name) {
	case "f12":
		return &KeyToggle{vk: VKF12}
	case "alt+enter":
		return &KeyToggle{vk: VKReturn, mod: VKMenu}
	default:
		return &KeyToggle{vk: VKF11}
	}
}

// TogglePressed reports a down transition since the previous call.
func (k *KeyToggle) TogglePressed() bool {
	down := win32.KeyDown(k.vk)
	if k.mod != 0 {
		down = down && win32.KeyDown(k.mod)
	}
	pressed := down && !k.held
	k.held = down
	return pressed
}
