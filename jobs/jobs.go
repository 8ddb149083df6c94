package jobs

import (
	"context"
	"time"

	"ClinicBook/config/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// PurgeSpec runs the expired otp cleanup every 15 minutes.
const PurgeSpec = "*/15 * * * *"

const purgeTimeout = time.Minute

type OTPPurger interface {
	PurgeExpiredOTPs(ctx context.Context) (int64, error)
}

/*
* Schedule the cleanup for every account collection
* The returned function stops the scheduler and waits for a running purge
 */
func StartOTPCleanup(purgers map[string]OTPPurger) (func(), error) {
	c := cron.New()
	if _, err := c.AddFunc(PurgeSpec, func() {
		PurgeExpiredOTPs(context.Background(), purgers)
	}); err != nil {
		return nil, err
	}
	c.Start()
	logger.Log.Info("otp cleanup scheduled", zap.String("spec", PurgeSpec))

	return func() {
		<-c.Stop().Done()
	}, nil
}

// PurgeExpiredOTPs clears expired reset codes. A failing collection does not
// stop the others.
func PurgeExpiredOTPs(ctx context.Context, purgers map[string]OTPPurger) {
	ctx, cancel := context.WithTimeout(ctx, purgeTimeout)
	defer cancel()

	for name, p := range purgers {
		n, err := p.PurgeExpiredOTPs(ctx)
		if err != nil {
			logger.Log.Error("otp cleanup failed", zap.String("accounts", name), zap.Error(err))
			continue
		}
		if n > 0 {
			logger.Log.Info("expired otps cleared", zap.String("accounts", name), zap.Int64("count", n))
		}
	}
}
