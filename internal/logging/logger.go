package logging

import (
	"log/slog"
	"os"
)

// Setup swaps the process-wide logger for a JSON handler on stdout. It
// runs before config loads, so startup failures already come out as
// structured lines; main replaces the handler with the database-backed
// fan-out once a connection exists.
func Setup() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
