package input

// Snapshot is the keyboard state frozen at the start of a frame
type Snapshot struct {
	keys KeySet
	mods Modifier
}

// NewSnapshot builds a snapshot with the given modifiers and keys held
func NewSnapshot(mods Modifier, keys ...Key) Snapshot {
	var set KeySet
	for _, k := range keys {
		set = set.With(k)
	}
	return Snapshot{keys: set, mods: mods}
}

// IsKeyDown reports whether k is held
func (s Snapshot) IsKeyDown(k Key) bool {
	return s.keys.Has(k)
}

// IsModifierDown reports whether every modifier in m is held
func (s Snapshot) IsModifierDown(m Modifier) bool {
	return m != ModNone && s.mods&m == m
}

// Keys returns the raw held-key mask
func (s Snapshot) Keys() KeySet {
	return s.keys
}
