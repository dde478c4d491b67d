package jobs

import (
	"context"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/logger"
)

// SweepExpiredRoles deactivates HR role grants whose expires_at has passed.
// Permission checks already treat expired grants as inactive; the sweep keeps
// is_active consistent for reporting and listing queries.
func (jr *JobRunner) SweepExpiredRoles() {
	jr.runWithRecovery("SweepExpiredRoles", func() {
		count, err := jr.roles.CleanupExpired(context.Background())
		if err != nil {
			logger.Error("Failed to sweep expired roles", "error", err)
			return
		}
		if count > 0 {
			logger.Info("Expired hr roles deactivated", "count", count)
		}
	})
}
