package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	calls int
	n     int64
	err   error
}

func (f *fakePurger) PurgeExpiredOTPs(context.Context) (int64, error) {
	f.calls++
	return f.n, f.err
}

func TestPurgeExpiredOTPsContinuesAfterFailure(t *testing.T) {
	users := &fakePurger{err: errors.New("boom")}
	doctors := &fakePurger{n: 3}

	PurgeExpiredOTPs(context.Background(), map[string]OTPPurger{"users": users, "doctors": doctors})

	assert.Equal(t, 1, users.calls)
	assert.Equal(t, 1, doctors.calls)
}

func TestPurgeSpecParses(t *testing.T) {
	_, err := cron.ParseStandard(PurgeSpec)
	assert.NoError(t, err)
}

func TestStartOTPCleanupStops(t *testing.T) {
	stop, err := StartOTPCleanup(map[string]OTPPurger{"users": &fakePurger{}})
	require.NoError(t, err)
	stop()
}
