// Package config provides configuration loading, merging, and validation
// facilities for both front ends.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Config file (JSON, or YAML for .yaml/.yml)
//  2. Environment variables, optionally seeded from a .env file
//  3. Command-line flags
//
// The main entry points are [GetClientConfig] for the terminal front end and
// [GetWebConfig] for the web front end.
package config
