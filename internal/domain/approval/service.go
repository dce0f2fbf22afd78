package approval

import (
	"context"
)

// ApprovalService applies pending -> approved/rejected decisions. Approving
// a leave also materializes one on_leave attendance row per calendar day of
// the leave range, in the same transaction as the status write.
type ApprovalService interface {
	Decide(ctx context.Context, req DecideRequest, decidedBy string) (DecideResponse, error)
}
