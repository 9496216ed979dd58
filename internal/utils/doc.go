// Package utils exposes reusable helpers consumed by the CLI commands.
//
// It houses the ConfigurationLoader, which layers embedded defaults,
// configuration files and SAFEEXEC_ environment variables through Viper, and
// the LoggerFactory that builds zap loggers in structured or console form.
package utils
