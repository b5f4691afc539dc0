// Package logging constructs the zap loggers used across unrealctl.
package logging
