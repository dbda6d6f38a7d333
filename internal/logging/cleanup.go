package logging

import (
	"log/slog"
	"time"

	"github.com/clinicore/clinic-backend/internal/models"
	"gorm.io/gorm"
)

// logRetention is how long persisted system_logs rows are kept.
const logRetention = 30 * 24 * time.Hour

// StartCleanup starts a goroutine that prunes expired system_logs rows
// once a day until done is closed.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().Add(-logRetention)
				result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
				if result.Error != nil {
					slog.Error("log cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("log cleanup completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
