package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSAndroid = "android"
	OSIOS     = "ios"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// CacheDirName is the per-user directory holding the cache database
const CacheDirName = "feed-client"

// IsAndroid reports whether the process runs on Android.
func IsAndroid() bool {
	// Fyne Android apps run as libdist.so and may report linux as GOOS
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// IsMobile reports whether the process runs on a phone OS.
func IsMobile() bool {
	return IsAndroid() || runtime.GOOS == OSIOS
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ResolveCachePath turns the configured cache path into an absolute file path
// and makes sure its directory exists. Absolute paths are used as is. Relative
// paths go under appRoot when set (the app sandbox on mobile) and otherwise
// under the user cache directory.
func ResolveCachePath(path, appRoot string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty cache path")
	}
	if !filepath.IsAbs(path) {
		base := appRoot
		if base == "" {
			dir, err := os.UserCacheDir()
			if err != nil {
				return "", fmt.Errorf("user cache dir: %w", err)
			}
			base = filepath.Join(dir, CacheDirName)
		}
		path = filepath.Join(base, path)
	}
	if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}
	return path, nil
}
