package texture

// Merge combines two dictionaries into a new one. Every base entry is
// kept in order; the overlay entries follow, in order, minus those
// whose name the base already holds. On a name collision the base copy
// wins. Duplicate names inside the overlay itself are not collapsed:
// when the base lacks the name, every overlay copy survives.
//
// The result carries the base's version stamp and device id and shares
// no payload storage with either input.
func Merge(base, overlay *Dictionary) *Dictionary {
	merged := New(base.Count() + overlay.Count())
	merged.Version = base.Version
	merged.DeviceID = base.DeviceID

	for _, e := range base.Entries {
		merged.Append(e.Clone())
	}
	for _, e := range overlay.Entries {
		if base.ContainsByName(e.Name) {
			continue
		}
		merged.Append(e.Clone())
	}
	return merged
}
