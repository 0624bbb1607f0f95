package switcher

import "strings"

// ListSeparator separates segments of the Windows search-path variable.
const ListSeparator = ";"

// RewriteSearchPath drops every segment of current that points at a bin
// directory below baseDir, then prepends selection's bin directory.
// Running it twice with the same selection yields the same value: the
// prepended segment matches the removal pattern itself.
func RewriteSearchPath(current string, baseDir string, selection string) string {
	kept := make([]string, 0, 16)
	for _, segment := range strings.Split(current, ListSeparator) {
		if segment == "" {
			continue
		}
		if isManagedBinSegment(segment, baseDir) {
			continue
		}
		kept = append(kept, segment)
	}

	segments := append([]string{binDir(selection)}, kept...)
	return strings.Join(segments, ListSeparator)
}

func binDir(installDir string) string {
	return strings.TrimRight(installDir, `\/`) + `\bin`
}

// isManagedBinSegment reports whether segment matches
// <baseDir>\<anything but the list separator>\bin — a bin directory at
// any depth below baseDir, but not <baseDir>\bin itself. A trailing
// separator and mixed slash styles are tolerated; Windows paths compare
// case-insensitively.
func isManagedBinSegment(segment string, baseDir string) bool {
	seg := strings.TrimRight(segment, `\/`)
	base := strings.TrimRight(baseDir, `\/`)

	if len(seg) <= len(base) || base == "" {
		return false
	}
	if !strings.EqualFold(seg[:len(base)], base) {
		return false
	}

	rest := seg[len(base):]
	if rest[0] != '\\' && rest[0] != '/' {
		return false
	}

	parts := strings.FieldsFunc(rest, func(r rune) bool {
		return r == '\\' || r == '/'
	})
	return len(parts) >= 2 && strings.EqualFold(parts[len(parts)-1], "bin")
}
