// Package header renders binary data as a C++ header that exposes the
// bytes as a static std::uint8_t array behind an include guard. The
// guard derivation and byte formatting are pure functions; nothing in
// this package touches the filesystem.
package header

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// guardPrefix tags every generated include guard.
const guardPrefix = "AUTOGEN_"

// GuardName derives the include-guard macro from the output path's
// base name: every "." becomes "_", the result is upper-cased and
// prefixed. "foo.h" yields "AUTOGEN_FOO_H". The guard depends only on
// the filename, never on the embedded content.
func GuardName(outputPath string) string {
	base := filepath.Base(outputPath)
	return guardPrefix + strings.ToUpper(strings.ReplaceAll(base, ".", "_"))
}

// FormatBytes renders data as a C array body: each byte as an
// uppercase two-digit hex literal, joined by ", ". Empty input yields
// an empty string.
func FormatBytes(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 6)
	for i, v := range data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "0x%02X", v)
	}
	return b.String()
}

// ParseBytes is the inverse of FormatBytes: it decodes an array body
// of "0xNN" literals back into the original bytes. A blank body
// decodes to zero bytes.
func ParseBytes(body string) ([]byte, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return []byte{}, nil
	}
	parts := strings.Split(body, ",")
	data := make([]byte, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		val, err := strconv.ParseUint(strings.TrimPrefix(p, "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid byte literal %q: %w", p, err)
		}
		data = append(data, byte(val))
	}
	return data, nil
}

// Render produces the complete header document for the given guard and
// data. The layout is fixed: a generation marker, the include guard,
// the <cstdint> include, and the array declaration named <guard>_VAL.
// An empty input renders a zero-element initializer.
func Render(guard string, data []byte) []byte {
	doc := fmt.Sprintf(
		"// auto-generated\n\n#ifndef %[1]s\n#include <cstdint>\n#define %[1]s\nstatic const std::uint8_t %[1]s_VAL[] = { %[2]s };\n#endif\n",
		guard, FormatBytes(data))
	return []byte(doc)
}
