package logger

import "log/slog"

// Component-specific logger functions

// DB returns a logger for database operations
func DB() *slog.Logger {
	return WithField("component", "db")
}

// Migration returns a logger for schema migration operations
func Migration() *slog.Logger {
	return WithField("component", "migration")
}

// Search returns a logger for query and filter operations
func Search() *slog.Logger {
	return WithField("component", "search")
}

// CLI returns a logger for CLI operations
func CLI() *slog.Logger {
	return WithField("component", "cli")
}
