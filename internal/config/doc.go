// Package config provides configuration loading, merging, and validation
// for the terminal client and the development backend.
//
// Configuration is assembled from several sources; later sources override
// non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. JSON config file (path from CONFIG or -c/-config)
//  3. Environment variables, including those loaded from a .env file
//  4. Command-line flags
//
// The entry points are [GetClientConfig] and [GetDevServerConfig]; both
// return a narrow, validated view of [StructuredConfig].
package config
