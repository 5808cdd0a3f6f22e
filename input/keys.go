package input

// KeySource reports whether a named key is held down.
type KeySource interface {
	Pressed(key string) bool
}

// KeySet is a KeySource backed by a fixed set of held keys.
type KeySet map[string]bool

// NewKeySet holds the named keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s.Press(k)
	}
	return s
}

func (s KeySet) Pressed(key string) bool {
	return s[normalizeKey(key)]
}

func (s KeySet) Press(key string) {
	s[normalizeKey(key)] = true
}

func (s KeySet) Release(key string) {
	delete(s, normalizeKey(key))
}
