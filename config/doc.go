// Package config turns flags and SUPPLYFINDER_* environment variables into
// one typed struct per process role.
//
// Flags use dashes (--registry-address); the matching viper key uses
// underscores (registry_address) and the environment variable is the key
// upper-cased under the SUPPLYFINDER_ prefix (SUPPLYFINDER_REGISTRY_ADDRESS).
// Precedence is flag, then environment, then the flag default.
package config
