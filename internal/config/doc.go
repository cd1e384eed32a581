// Package config centralizes application configuration and path resolution.
//
// Configuration is layered: an optional config.yaml is read first, then
// RECSTUDY_-prefixed environment variables override it. The Paths type is
// the single source of truth for where per-ticker recommendation files are
// read from and where generated event tables are written.
package config
