// Package config provides configuration loading, merging, and validation
// facilities for the client and the reference API server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// Defaults fill whatever no source has set. The entry points are
// [GetClientConfig] for the terminal client and [GetServerConfig] for the
// reference API server.
package config
