package exports

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/utils"
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const fallbackCronSpec = "@daily"

// Worker uploads ledger snapshots on a cron schedule. Only the instance
// holding the redis leader lock runs a given tick.
type Worker struct {
	log           *zap.Logger
	cfg           *config.InternalConfig
	locker        contracts.LockerService
	exportUsecase contracts.ExportUsecase
	cron          *cron.Cron
	runCtx        context.Context
	cancel        context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, exportUsecase contracts.ExportUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, exportUsecase: exportUsecase}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)

	c := cron.New()
	spec := w.cfg.Export.CronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("exports.worker: invalid cron spec, falling back to @daily",
			zap.String("cron_spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackCronSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for them to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) runOnce(parent context.Context) {
	requestID := utils.GenerateRequestID()
	ctx := context.WithValue(parent, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
	ctx, cancel := context.WithTimeout(ctx, w.cfg.Export.RunTimeout)
	defer cancel()

	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyExportLeaderLock, w.cfg.Export.LockTTL)
	if err != nil {
		w.log.Warn("exports.worker: leader lock attempt failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if !acquired {
		w.log.Info("exports.worker: leader lock held by another instance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return
	}
	defer func() {
		// The run context may already be done; release with a fresh one.
		unlockCtx, unlockCancel := context.WithTimeout(context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, requestID), w.cfg.Export.RunTimeout)
		defer unlockCancel()
		if err := w.locker.Unlock(unlockCtx, constvars.RedisKeyExportLeaderLock, token); err != nil {
			w.log.Warn("exports.worker: failed to release leader lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	if _, err := w.exportUsecase.ExportLedger(ctx); err != nil {
		w.log.Error("exports.worker: export failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
