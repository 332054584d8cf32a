package common

import "path"

// UnknownStr is the fallback label for values outside their enum range.
const UnknownStr = "unknown"

// PkgAlias returns the short package name, the last element of the
// import path. An empty path stays empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
