// Package config provides configuration loading, merging, and validation
// for the note client and the note server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables, optionally seeded from a .env file
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] and [GetServerConfig]; both are
// views over the merged [StructuredConfig].
package config
