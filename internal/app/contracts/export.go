package contracts

import "context"

type ExportUsecase interface {
	// ExportLedger uploads a snapshot of every committed booking and returns the object name.
	ExportLedger(ctx context.Context) (string, error)
}
