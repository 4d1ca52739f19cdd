package controllers

import (
	"booking-service/internal/app/config"
	"booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"net/http"
	"time"
)

const defaultRequestTimeout = 10 * time.Second

func limitBody(w http.ResponseWriter, r *http.Request, internalConfig *config.InternalConfig) io.Reader {
	limit := int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20
	if limit <= 0 {
		return r.Body
	}
	return http.MaxBytesReader(w, r.Body, limit)
}

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	if internalConfig.App.RequestTimeoutInSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
}

// validationError reports absent required fields as MissingParameter and
// anything else as a plain validation failure.
func validationError(err error) *exceptions.CustomError {
	if missing := exceptions.MissingRequiredFields(err); len(missing) > 0 {
		return exceptions.ErrMissingParameter(err, missing...)
	}
	return exceptions.ErrInputValidation(err)
}

// usecaseError reports an expired request deadline as a gateway timeout.
// Typed usecase errors, storage timeouts included, pass through while the
// request deadline still holds.
func usecaseError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) && errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return err
}
