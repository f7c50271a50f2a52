package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"farmshare-backend/internal/logger"
	"farmshare-backend/internal/utils"
)

// SendReturnDueReport emails operations a summary of active bookings whose
// end date has passed. Read-only: completing a booking stays a lifecycle
// operation, never a side effect of a job.
func (jr *JobRunner) SendReturnDueReport() {
	jr.runWithRecovery("SendReturnDueReport", func() {
		ctx := context.Background()

		due, err := jr.store.ListReturnsDue(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to list due returns", "error", err)
			return
		}
		if len(due) == 0 {
			logger.Info("No returns due")
			return
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%d booking(s) due for return:\n\n", len(due))
		for _, booking := range due {
			fmt.Fprintf(&b, "- booking #%d: %s rented by %s until %s (%s)\n",
				booking.ID, booking.EquipmentName, booking.FarmerName,
				utils.FormatDate(booking.EndDate), booking.Location)
		}

		subject := fmt.Sprintf("FarmShare: %d equipment return(s) due", len(due))
		if err := jr.emailSvc.SendOpsNotification(ctx, subject, b.String()); err != nil {
			logger.Error("Failed to send return-due report", "error", err)
			return
		}
		logger.Info("Sent return-due report", "count", len(due))
	})
}
