// Package config provides configuration loading, merging, and validation
// facilities for the FamilyConnect vault client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file (path taken from CONFIG or -c/-config)
//  2. Environment variables
//  3. Command-line flags
//
// Fields left empty by every source receive the defaults from
// [DefaultConfig]. The main entry point is [GetStructuredConfig].
package config
