package desktop

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyboardSource reads the live keyboard using ebiten key names, such as
// "W", "Space" or "ShiftLeft". Names are case-insensitive.
type KeyboardSource struct {
	keys map[string]ebiten.Key
}

func NewKeyboardSource() *KeyboardSource {
	keys := make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		keys[strings.ToLower(k.String())] = k
	}
	return &KeyboardSource{keys: keys}
}

func (s *KeyboardSource) Pressed(name string) bool {
	k, ok := s.keys[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(k)
}
