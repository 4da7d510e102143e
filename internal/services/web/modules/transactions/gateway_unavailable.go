package transactions

import (
	"context"

	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListTransactions(context.Context) ([]Transaction, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "error.unavailable", "transactions service is not configured")
}

func (unavailableGateway) RecordTransaction(context.Context, TransactionInput) error {
	return apperrors.EK(apperrors.KindUnavailable, "error.unavailable", "transactions service is not configured")
}
