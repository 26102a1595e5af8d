package messaging

import "context"

// Messenger sends the system's three SMS notices. Each call returns the
// provider's delivery id. A failed delivery for one recipient must never
// abort processing of the others; callers log and continue.
type Messenger interface {
	SendAssignment(ctx context.Context, to, memberName, choreName, choreDescription, confirmURL, historyURL string) (string, error)
	SendReminder(ctx context.Context, to, memberName, choreName, confirmURL string) (string, error)
	SendAdminSummary(ctx context.Context, to, adminName, summary string) (string, error)
}
