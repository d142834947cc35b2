package inventory

import (
	"bytes"
	"unicode/utf16"
)

const hexDigits = "0123456789abcdef"

// Encode renders records in the dump file format: elements and members
// separated by ", ", keys by ": ", no other whitespace and no trailing
// newline. Strings are ASCII-only, everything else is \u escaped, so
// dumps are byte-identical for identical input.
func Encode(records []UserRecord) []byte {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, r := range records {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(`{"name": `)
		writeString(&b, r.Name)
		b.WriteString(`, "groups": [`)
		for j, g := range r.Groups {
			if j > 0 {
				b.WriteString(", ")
			}
			writeString(&b, g)
		}
		b.WriteString(`], "password": `)
		writeString(&b, r.Password)
		b.WriteByte('}')
	}
	b.WriteByte(']')
	return b.Bytes()
}

func writeString(b *bytes.Buffer, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\b':
			b.WriteString(`\b`)
		case r == '\f':
			b.WriteString(`\f`)
		case r >= 0x20 && r < 0x7f:
			b.WriteByte(byte(r))
		case r > 0xffff:
			r1, r2 := utf16.EncodeRune(r)
			writeEscape(b, r1)
			writeEscape(b, r2)
		default:
			writeEscape(b, r)
		}
	}
	b.WriteByte('"')
}

func writeEscape(b *bytes.Buffer, r rune) {
	b.WriteString(`\u`)
	b.WriteByte(hexDigits[r>>12&0xf])
	b.WriteByte(hexDigits[r>>8&0xf])
	b.WriteByte(hexDigits[r>>4&0xf])
	b.WriteByte(hexDigits[r&0xf])
}
