// Package config provides configuration structures and utilities for chatwrapped.
// It defines the report preferences, the import bounds and the lookup of the
// .chatwrapped file and environment overrides.
package config
