package model

// Package model defines domain data structures shared across the app: feed
// posts and their media variants, trending entries, and the pull-to-refresh
// state enum. Structures are plain values so snapshots can be handed to the UI
// without copying concerns.
