// Package config loads, merges and validates the client configuration.
//
// Sources are applied in the following order, later sources overriding
// earlier non-zero fields:
//  1. .env file (only fills variables that are not already set)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults fill whatever is still empty. The entry point is [GetClientConfig].
package config
