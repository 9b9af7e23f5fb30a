package texture

import (
	"bytes"

	"txd-manager/core/rwstream"
)

// NameSize is the on-disk size of the fixed, NUL-padded name fields
// inside a texture's platform struct.
const NameSize = 32

// Entry is a single named texture. Raw holds the complete Texture
// Native payload (platform struct plus extensions) exactly as read from
// disk; beyond the name fields it stays opaque.
type Entry struct {
	// Name is the texture name decoded from the fixed name field.
	Name string
	// Version is the library stamp of the entry's section header.
	Version uint32
	// Raw is the verbatim section payload.
	Raw []byte
}

// Clone returns a deep copy of the entry. A merged dictionary never
// aliases the payload storage of its sources.
func (e Entry) Clone() Entry {
	return Entry{Name: e.Name, Version: e.Version, Raw: bytes.Clone(e.Raw)}
}

// Dictionary is an ordered texture container. Entry order is
// significant and preserved by every operation.
type Dictionary struct {
	// Version is the library stamp of the container.
	Version uint32
	// DeviceID identifies the platform the rasters were built for.
	DeviceID uint16
	// Entries holds the textures in container order.
	Entries []Entry
}

// New returns an empty dictionary with room for capacity entries.
func New(capacity int) *Dictionary {
	return &Dictionary{
		Version: rwstream.VersionSA,
		Entries: make([]Entry, 0, capacity),
	}
}

// Count returns the number of entries.
func (d *Dictionary) Count() int {
	return len(d.Entries)
}

// Append adds an entry at the end of the dictionary.
func (d *Dictionary) Append(e Entry) {
	d.Entries = append(d.Entries, e)
}

// FindByName returns the first entry named name, or nil.
func (d *Dictionary) FindByName(name string) *Entry {
	for i := range d.Entries {
		if d.Entries[i].Name == name {
			return &d.Entries[i]
		}
	}
	return nil
}

// ContainsByName reports whether the dictionary holds an entry named name.
func (d *Dictionary) ContainsByName(name string) bool {
	return d.FindByName(name) != nil
}
