package trending

// Package trending keeps the hot-search list for the discovery tab. It loads
// the last cached list from storage on start, refreshes it from the remote
// RSS feed on demand and pushes every new list to a single UI callback.
