package main

// Exit codes shared by all commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing API key, unreadable config)
	ExitNotFound    = 3 // Remote resource not found
	ExitSourceError = 4 // Invalid source (unreadable, unsupported type, too large)
	ExitAPIError    = 5 // Remote API error (auth, rate limit, server error)
)
