package texture

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"txd-manager/core/rwstream"
)

// Layout of the platform struct at the head of a Texture Native
// payload. The name fields sit at fixed offsets behind the inner
// Struct header; everything after them is raster data and stays opaque.
const (
	// nativeNameOffset skips the inner Struct header (12 bytes), the
	// platform id (4) and the filter flags (4).
	nativeNameOffset = rwstream.HeaderSize + 8
	// minNativeStruct is the smallest plausible platform struct: ids
	// plus the two name fields.
	minNativeStruct = 8 + 2*NameSize
	// minNativeSize is minNativeStruct behind its own header.
	minNativeSize = rwstream.HeaderSize + minNativeStruct
)

// dictStructSize is the payload of the dictionary's own Struct section:
// a uint16 entry count and a uint16 device id.
const dictStructSize = 4

// Read decodes a texture dictionary from r.
func Read(r io.Reader) (*Dictionary, error) {
	root, err := rwstream.ReadExpected(r, rwstream.SectionTexDictionary)
	if err != nil {
		return nil, err
	}

	info, err := rwstream.ReadExpected(r, rwstream.SectionStruct)
	if err != nil {
		return nil, err
	}
	if info.Size < dictStructSize {
		return nil, fmt.Errorf("dictionary struct too small: %d bytes", info.Size)
	}
	head, err := rwstream.ReadPayload(r, info)
	if err != nil {
		return nil, err
	}
	count := binary.LittleEndian.Uint16(head[0:2])

	dict := New(int(count))
	dict.Version = root.Version
	dict.DeviceID = binary.LittleEndian.Uint16(head[2:4])

	for i := 0; i < int(count); i++ {
		entry, err := readEntry(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read texture %d of %d: %w", i+1, count, err)
		}
		dict.Append(entry)
	}

	if err := skipTrailer(r); err != nil {
		return nil, err
	}
	return dict, nil
}

func readEntry(r io.Reader) (Entry, error) {
	h, err := rwstream.ReadExpected(r, rwstream.SectionTextureNative)
	if err != nil {
		return Entry{}, err
	}
	raw, err := rwstream.ReadPayload(r, h)
	if err != nil {
		return Entry{}, err
	}
	name, err := nativeName(raw)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: name, Version: h.Version, Raw: raw}, nil
}

// nativeName validates the platform struct at the head of a Texture
// Native payload and extracts its name field.
func nativeName(raw []byte) (string, error) {
	if len(raw) < minNativeSize {
		return "", fmt.Errorf("texture payload too small: %d bytes", len(raw))
	}
	sectionType := binary.LittleEndian.Uint32(raw[0:4])
	if sectionType != rwstream.SectionStruct {
		return "", fmt.Errorf("texture payload starts with %s section, want %s",
			rwstream.SectionName(sectionType), rwstream.SectionName(rwstream.SectionStruct))
	}
	structSize := binary.LittleEndian.Uint32(raw[4:8])
	if structSize < minNativeStruct {
		return "", fmt.Errorf("texture struct too small: %d bytes", structSize)
	}
	return decodeName(raw[nativeNameOffset : nativeNameOffset+NameSize]), nil
}

// decodeName cuts a fixed-size name field at its first NUL.
func decodeName(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}

// skipTrailer discards the trailing Extension section. Containers in
// the wild are sometimes cut off right after the last texture, so a
// clean end of stream is fine too.
func skipTrailer(r io.Reader) error {
	h, err := rwstream.ReadHeader(r)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if h.Type != rwstream.SectionExtension {
		return fmt.Errorf("unexpected trailing %s section", rwstream.SectionName(h.Type))
	}
	return rwstream.Skip(r, h)
}

// Write encodes the dictionary to w. Entry payloads are written exactly
// as they were read, so a read/write cycle reproduces the container.
func Write(w io.Writer, d *Dictionary) error {
	if d.Count() > math.MaxUint16 {
		return fmt.Errorf("dictionary holds %d textures, more than the format's limit of %d",
			d.Count(), math.MaxUint16)
	}

	total := int64(rwstream.HeaderSize + dictStructSize)
	for _, e := range d.Entries {
		total += int64(rwstream.HeaderSize + len(e.Raw))
	}
	total += rwstream.HeaderSize // trailing empty extension
	if total > math.MaxUint32 {
		return fmt.Errorf("dictionary payload of %d bytes exceeds the format's limit", total)
	}

	version := d.Version
	if version == 0 {
		version = rwstream.VersionSA
	}

	err := rwstream.WriteHeader(w, rwstream.Header{
		Type:    rwstream.SectionTexDictionary,
		Size:    uint32(total),
		Version: version,
	})
	if err != nil {
		return err
	}

	err = rwstream.WriteHeader(w, rwstream.Header{
		Type:    rwstream.SectionStruct,
		Size:    dictStructSize,
		Version: version,
	})
	if err != nil {
		return err
	}
	var head [dictStructSize]byte
	binary.LittleEndian.PutUint16(head[0:2], uint16(d.Count()))
	binary.LittleEndian.PutUint16(head[2:4], d.DeviceID)
	if _, err := w.Write(head[:]); err != nil {
		return fmt.Errorf("failed to write dictionary struct: %w", err)
	}

	for _, e := range d.Entries {
		entryVersion := e.Version
		if entryVersion == 0 {
			entryVersion = version
		}
		err := rwstream.WriteHeader(w, rwstream.Header{
			Type:    rwstream.SectionTextureNative,
			Size:    uint32(len(e.Raw)),
			Version: entryVersion,
		})
		if err != nil {
			return err
		}
		if _, err := w.Write(e.Raw); err != nil {
			return fmt.Errorf("failed to write texture %s: %w", e.Name, err)
		}
	}

	return rwstream.WriteHeader(w, rwstream.Header{
		Type:    rwstream.SectionExtension,
		Size:    0,
		Version: version,
	})
}
