package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"farmshare-backend/internal/logger"
	"farmshare-backend/internal/utils"
)

// SendMaintenanceDueReport emails operations a summary of scheduled
// maintenance whose date has passed.
func (jr *JobRunner) SendMaintenanceDueReport() {
	jr.runWithRecovery("SendMaintenanceDueReport", func() {
		ctx := context.Background()

		due, err := jr.store.ListDue(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to list due maintenance", "error", err)
			return
		}
		if len(due) == 0 {
			logger.Info("No maintenance due")
			return
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%d maintenance task(s) due:\n\n", len(due))
		for _, m := range due {
			fmt.Fprintf(&b, "- maintenance #%d: %s scheduled for %s (%s)\n",
				m.ID, m.EquipmentName, utils.FormatDate(m.ScheduledDate), m.Description)
		}

		subject := fmt.Sprintf("FarmShare: %d maintenance task(s) due", len(due))
		if err := jr.emailSvc.SendOpsNotification(ctx, subject, b.String()); err != nil {
			logger.Error("Failed to send maintenance-due report", "error", err)
			return
		}
		logger.Info("Sent maintenance-due report", "count", len(due))
	})
}
