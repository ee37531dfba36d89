package sumfile

import (
	"strings"
	"unicode"
)

// splitLine classifies a single manifest line and extracts its digest and
// filename. Blank lines, comments and lines matching neither dialect
// return ok=false. Lines starting with the literal algorithm name are
// BSD-style; everything else is treated as GNU-style.
func splitLine(line string, spec DigestSpec) (digest, filename string, ok bool) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)

	if len(line) == 0 || line[0] == '#' {
		return "", "", false
	}

	if strings.HasPrefix(line, spec.Name) {
		return splitBSD(line, spec)
	}
	return splitGNU(line, spec)
}

// splitBSD parses a BSD-style line: `NAME (filename) = hexdigest`.
//
// The BSD md5/sha1 tools do not escape filenames, so the filename is
// delimited by the last ')' in the line. A filename containing ')' after
// the true delimiter would still misparse; that limitation is inherent
// to the format.
func splitBSD(line string, spec DigestSpec) (digest, filename string, ok bool) {
	pos := len(spec.Name)

	if pos < len(line) && line[pos] == ' ' {
		pos++
	}

	if pos >= len(line) || line[pos] != '(' {
		return "", "", false
	}
	pos++

	end := strings.LastIndexByte(line, ')')
	if end < pos {
		return "", "", false
	}

	filename = line[pos:end]

	rest := strings.TrimLeftFunc(line[end+1:], unicode.IsSpace)
	if len(rest) == 0 || rest[0] != '=' {
		return "", "", false
	}

	rest = strings.TrimLeftFunc(rest[1:], unicode.IsSpace)
	rest = strings.TrimSuffix(rest, "\n")

	// No validation of digest length or hex content happens here.
	return rest, filename, true
}

// splitGNU parses a GNU coreutils style line:
// `[\]hexdigest<space-or-tab><space-or-star>filename`.
//
// A leading backslash marks the filename as escaped. The '*' separator
// marks binary mode; it is consumed but not surfaced to the caller.
func splitGNU(line string, spec DigestSpec) (digest, filename string, ok bool) {
	hexLen := spec.HexLen()

	// hex digest + two separator bytes + at least one filename byte,
	// plus one more for the leading backslash of an escaped filename.
	minLen := hexLen + 2 + 1
	escaped := len(line) > 0 && line[0] == '\\'
	if escaped {
		minLen++
	}
	if len(line) < minLen {
		return "", "", false
	}

	var pos int
	if escaped {
		digest = line[1 : 1+hexLen]
		pos = 1 + hexLen
	} else {
		digest = line[:hexLen]
		pos = hexLen
	}

	if line[pos] != ' ' && line[pos] != '\t' {
		return "", "", false
	}
	pos++

	if line[pos] != ' ' && line[pos] != '*' {
		return "", "", false
	}
	pos++

	filename = strings.TrimSuffix(line[pos:], "\n")

	if escaped {
		decoded, valid := unescapeFilename(filename)
		if !valid {
			return "", "", false
		}
		filename = decoded
	}

	return digest, filename, true
}

// unescapeFilename decodes the backslash escapes coreutils emits for
// filenames. Only \\, \n, \t and \r are accepted; \0 and any other or
// truncated escape reject the line, so decoding can never introduce a
// NUL byte (the manifest format forbids embedded NUL).
func unescapeFilename(name string) (string, bool) {
	if !strings.ContainsRune(name, '\\') {
		return name, true
	}

	var sb strings.Builder
	sb.Grow(len(name))

	for i := 0; i < len(name); i++ {
		c := name[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}

		i++
		if i >= len(name) {
			return "", false
		}

		switch name[i] {
		case '\\':
			sb.WriteByte('\\')
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		default:
			return "", false
		}
	}

	return sb.String(), true
}
