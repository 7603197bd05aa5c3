package ui

// Package ui contains the Fyne-based shell of the feed client: bottom tabs for
// home, video, discovery, messages and profile, the pull-to-refresh container
// and the status strip that renders the resolved system chrome. All UI strings
// are localized via Localization.
