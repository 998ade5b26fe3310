//go:build !windows

package preopen

import "os"

// isWindows is false everywhere except classify_windows.go, which
// overrides it with a true constant under //go:build windows.
const isWindows = false

// isWindowsPathPositive never fires outside Windows.
func isWindowsPathPositive(s string) bool {
	return false
}

// statExists reports whether a stat of path fails for any reason other
// than the path not existing. Only IsMoreLikelyPathThanList calls this; it
// is a legacy code path kept for compatibility and unreferenced by the
// main classification pipeline.
func statExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
