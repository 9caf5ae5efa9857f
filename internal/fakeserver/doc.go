// Package fakeserver is an in-memory stand-in for the remote task manager.
//
// It serves the same REST and GraphQL endpoints the client talks to, keeps
// tasks and users in memory, records every call in arrival order and can be
// told to fail a given operation with an HTTP status, a GraphQL error, a null
// result or a dropped connection. It is used by tests across the module.
package fakeserver
