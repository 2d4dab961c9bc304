package leave

import (
	"fmt"
	"time"

	"hrdesk/internal/contract"
)

// LongLeaveThresholdDays is the longest leave that does not notify HR.
const LongLeaveThresholdDays = 3

// CalculateDays returns the inclusive whole-day count between start and end.
func CalculateDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func RequiresNotification(days int) bool {
	return days > LongLeaveThresholdDays
}

// LongLeaveNotice is handed to the Notifier for a freshly persisted request.
type LongLeaveNotice struct {
	Request contract.LeaveRequest
	Days    int
}

func (n LongLeaveNotice) Subject() string {
	return fmt.Sprintf("Long leave request #%d", n.Request.ID)
}

func (n LongLeaveNotice) Message() string {
	return fmt.Sprintf("Employee %d requested %d days of %s leave (%s to %s): %s",
		n.Request.EmployeeID, n.Days, n.Request.Type, n.Request.StartDate, n.Request.EndDate, n.Request.Reason)
}
