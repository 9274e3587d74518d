// Package config loads the kinkeeper server and client configuration from
// environment variables, command-line flags, and an optional JSON file,
// merging the sources with dario.cat/mergo so that the first non-zero value
// wins (env > flags > JSON).
package config
