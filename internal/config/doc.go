// Package config defines the service's typed settings — listen port and
// log level — and loads them from defaults, an optional config file, and
// TASKS_-prefixed environment variables, validating the result before
// the server starts.
package config
