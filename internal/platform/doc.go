package platform

// Package platform contains OS integration helpers: Android detection, the
// on-disk location of the feed cache and directory creation.
