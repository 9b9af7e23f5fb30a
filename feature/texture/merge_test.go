package texture_test

import (
	"testing"

	"txd-manager/feature/texture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(name, payload string) texture.Entry {
	return texture.Entry{Name: name, Raw: []byte(payload)}
}

func dict(entries ...texture.Entry) *texture.Dictionary {
	d := texture.New(len(entries))
	for _, e := range entries {
		d.Append(e)
	}
	return d
}

func names(d *texture.Dictionary) []string {
	out := make([]string, 0, d.Count())
	for _, e := range d.Entries {
		out = append(out, e.Name)
	}
	return out
}

func TestMergeBaseWinsCollisions(t *testing.T) {
	base := dict(entry("wall01", "base-wall01"), entry("wall02", "base-wall02"))
	overlay := dict(entry("wall02", "overlay-wall02"), entry("door01", "overlay-door01"))

	merged := texture.Merge(base, overlay)

	require.Equal(t, []string{"wall01", "wall02", "door01"}, names(merged))
	assert.Equal(t, []byte("base-wall02"), merged.FindByName("wall02").Raw)
	assert.Equal(t, []byte("overlay-door01"), merged.FindByName("door01").Raw)
}

func TestMergeCount(t *testing.T) {
	tests := []struct {
		name    string
		base    *texture.Dictionary
		overlay *texture.Dictionary
		want    int
	}{
		{
			name:    "DisjointInputs",
			base:    dict(entry("a", "1"), entry("b", "2")),
			overlay: dict(entry("c", "3")),
			want:    3,
		},
		{
			name:    "AllCollide",
			base:    dict(entry("a", "1"), entry("b", "2")),
			overlay: dict(entry("b", "x"), entry("a", "y")),
			want:    2,
		},
		{
			name:    "EmptyBase",
			base:    dict(),
			overlay: dict(entry("a", "1"), entry("b", "2")),
			want:    2,
		},
		{
			name:    "EmptyOverlay",
			base:    dict(entry("a", "1")),
			overlay: dict(),
			want:    1,
		},
		{
			name:    "BothEmpty",
			base:    dict(),
			overlay: dict(),
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := texture.Merge(tt.base, tt.overlay)
			assert.Equal(t, tt.want, merged.Count())
		})
	}
}

func TestMergePreservesOrder(t *testing.T) {
	base := dict(entry("z", "1"), entry("a", "2"), entry("m", "3"))
	overlay := dict(entry("q", "4"), entry("a", "5"), entry("b", "6"))

	merged := texture.Merge(base, overlay)

	// Base entries first in base order, then surviving overlay entries
	// in overlay order. Nothing is sorted.
	assert.Equal(t, []string{"z", "a", "m", "q", "b"}, names(merged))
}

func TestMergeWithSelf(t *testing.T) {
	d := dict(entry("a", "1"), entry("b", "2"))

	merged := texture.Merge(d, d)

	assert.Equal(t, names(d), names(merged))
	assert.Equal(t, d.Count(), merged.Count())
}

func TestMergeKeepsOverlayInternalDuplicates(t *testing.T) {
	base := dict(entry("wall01", "1"))
	overlay := dict(entry("glass", "first"), entry("glass", "second"))

	merged := texture.Merge(base, overlay)

	// Deduplication only checks the base: an overlay name the base
	// lacks survives however often the overlay holds it.
	assert.Equal(t, []string{"wall01", "glass", "glass"}, names(merged))
}

func TestMergeNamesCompareExact(t *testing.T) {
	base := dict(entry("Wall01", "upper"))
	overlay := dict(entry("wall01", "lower"))

	merged := texture.Merge(base, overlay)

	assert.Equal(t, []string{"Wall01", "wall01"}, names(merged))
}

func TestMergeCarriesBaseStamp(t *testing.T) {
	base := dict(entry("a", "1"))
	base.Version = 0x0800FFFF
	base.DeviceID = 2
	overlay := dict(entry("b", "2"))
	overlay.Version = 0x1803FFFF
	overlay.DeviceID = 9

	merged := texture.Merge(base, overlay)

	assert.Equal(t, uint32(0x0800FFFF), merged.Version)
	assert.Equal(t, uint16(2), merged.DeviceID)
}

func TestMergeCopiesPayloads(t *testing.T) {
	base := dict(entry("a", "base"))
	overlay := dict(entry("b", "overlay"))

	merged := texture.Merge(base, overlay)

	base.Entries[0].Raw[0] = 'X'
	overlay.Entries[0].Raw[0] = 'X'

	assert.Equal(t, []byte("base"), merged.FindByName("a").Raw)
	assert.Equal(t, []byte("overlay"), merged.FindByName("b").Raw)
}

func TestFindByName(t *testing.T) {
	d := dict(entry("a", "first"), entry("a", "second"), entry("b", "3"))

	// First match wins.
	found := d.FindByName("a")
	require.NotNil(t, found)
	assert.Equal(t, []byte("first"), found.Raw)

	assert.Nil(t, d.FindByName("missing"))
	assert.True(t, d.ContainsByName("b"))
	assert.False(t, d.ContainsByName("B"))
}
