package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/opencompanybot/registration-service/pkg/utils"
	"github.com/stretchr/testify/assert"
)

var testCfg = utils.RetryConfig{
	MaxAttempts:  4,
	InitialDelay: time.Millisecond,
	MaxDelay:     5 * time.Millisecond,
	Multiplier:   2,
}

func TestRetry_EventualSuccess(t *testing.T) {
	attempts := 0
	err := utils.Retry(testCfg, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetry_Exhausted(t *testing.T) {
	transient := errors.New("transient")
	attempts := 0
	err := utils.Retry(testCfg, func() error {
		attempts++
		return transient
	})
	assert.ErrorIs(t, err, transient)
	assert.Equal(t, 4, attempts)
}

func TestRetry_FatalStopsImmediately(t *testing.T) {
	fatal := errors.New("fatal")
	attempts := 0
	err := utils.Retry(testCfg, func() error {
		attempts++
		return fatal
	}, fatal)
	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, attempts)
}

func TestRetry_FatalMatchesWrapped(t *testing.T) {
	fatal := errors.New("fatal")
	attempts := 0
	err := utils.Retry(testCfg, func() error {
		attempts++
		return errors.Join(errors.New("context"), fatal)
	}, fatal)
	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, attempts)
}

func TestRetry_DefaultsApplied(t *testing.T) {
	attempts := 0
	err := utils.Retry(utils.RetryConfig{InitialDelay: time.Millisecond}, func() error {
		attempts++
		return errors.New("always")
	})
	assert.Error(t, err)
	assert.Equal(t, 3, attempts)
}
