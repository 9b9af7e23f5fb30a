package rwstream

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the fixed on-disk size of a section header.
const HeaderSize = 12

// Section types used by texture dictionary containers.
const (
	SectionStruct        uint32 = 0x01
	SectionString        uint32 = 0x02
	SectionExtension     uint32 = 0x03
	SectionTextureNative uint32 = 0x15
	SectionTexDictionary uint32 = 0x16
)

// VersionSA is the library stamp carried by containers built with the
// San Andreas tool chain. New containers are stamped with it when no
// source version is available.
const VersionSA uint32 = 0x1803FFFF

// Header describes one section of a binary stream. Size counts the
// payload bytes that follow the header; child sections live inside the
// payload of their parent.
type Header struct {
	Type    uint32
	Size    uint32
	Version uint32
}

// ReadHeader reads the next section header from r. A clean end of
// stream is reported as io.EOF; a header cut short is an error.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF {
			return Header{}, io.EOF
		}
		return Header{}, fmt.Errorf("failed to read section header: %w", err)
	}
	return Header{
		Type:    binary.LittleEndian.Uint32(buf[0:4]),
		Size:    binary.LittleEndian.Uint32(buf[4:8]),
		Version: binary.LittleEndian.Uint32(buf[8:12]),
	}, nil
}

// ReadExpected reads the next section header and verifies its type.
func ReadExpected(r io.Reader, sectionType uint32) (Header, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return Header{}, err
	}
	if h.Type != sectionType {
		return Header{}, fmt.Errorf("found %s section, want %s",
			SectionName(h.Type), SectionName(sectionType))
	}
	return h, nil
}

// ReadPayload reads the full payload of the section described by h.
func ReadPayload(r io.Reader, h Header) ([]byte, error) {
	payload := make([]byte, h.Size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("failed to read %s payload (%d bytes): %w",
			SectionName(h.Type), h.Size, err)
	}
	return payload, nil
}

// Skip discards the payload of the section described by h.
func Skip(r io.Reader, h Header) error {
	if _, err := io.CopyN(io.Discard, r, int64(h.Size)); err != nil {
		return fmt.Errorf("failed to skip %s payload (%d bytes): %w",
			SectionName(h.Type), h.Size, err)
	}
	return nil
}

// WriteHeader writes a section header to w.
func WriteHeader(w io.Writer, h Header) error {
	var buf [HeaderSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], h.Type)
	binary.LittleEndian.PutUint32(buf[4:8], h.Size)
	binary.LittleEndian.PutUint32(buf[8:12], h.Version)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("failed to write %s header: %w", SectionName(h.Type), err)
	}
	return nil
}

// SectionName returns a readable name for a section type, for error
// messages and listings.
func SectionName(sectionType uint32) string {
	switch sectionType {
	case SectionStruct:
		return "Struct"
	case SectionString:
		return "String"
	case SectionExtension:
		return "Extension"
	case SectionTextureNative:
		return "Texture Native"
	case SectionTexDictionary:
		return "Texture Dictionary"
	default:
		return fmt.Sprintf("0x%X", sectionType)
	}
}
