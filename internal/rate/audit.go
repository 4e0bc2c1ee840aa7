package rate

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wgopar/usd-conversions-agent/internal/adapters"
	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

const auditTimeout = 2 * time.Second

// AuditRecorder persists provider attempts. Storage errors are logged and dropped so the
// audit never fails a rates request.
type AuditRecorder struct {
	repo adapters.AttemptRepository
}

func (a *AuditRecorder) ObserveFetch(ctx context.Context, attempts []domain.ProviderAttempt) {
	if len(attempts) == 0 {
		return
	}

	// the request may already be cancelled; the attempts are still worth keeping
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()

	if err := a.repo.SaveAttempts(saveCtx, attempts); err != nil {
		logrus.WithError(err).WithField("fetch_id", attempts[0].FetchID).Error("failed to save provider attempts")
	}
}

func NewAuditRecorder(repo adapters.AttemptRepository) *AuditRecorder {
	return &AuditRecorder{repo: repo}
}
