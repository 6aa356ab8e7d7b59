// Package config loads and validates capgen configuration from a TOML file,
// applying defaults and expanding user paths. Bridging helpers convert the
// caption section into the core packages' option types so the CLI is the
// only place that touches raw config values.
package config
