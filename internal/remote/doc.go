package remote

// Package remote contains the clients for the two content services: the
// short-video feed (JSON over HTTP, offset/count paging) and the trending
// search list (RSS). Both return model types and never retry on their own.
