package models

// Presence statuses shown next to a conversation avatar
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusAway    = "away"
	StatusBusy    = "busy"
)

// Profile grid tabs
const (
	TabPosts  = "posts"
	TabSaved  = "saved"
	TabTagged = "tagged"
)

// Colour schemes
const (
	SchemeLight = "light"
	SchemeDark  = "dark"
)

// Seed backends
const (
	SeedBackendFile   = "file"
	SeedBackendDynamo = "dynamo"
)
