package cooldown_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CoinQuest_Go/internal/cooldown"
	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// TestErrOnCooldown_Error tests the error message formatting
func TestErrOnCooldown_Error(t *testing.T) {
	tests := []struct {
		name          string
		err           cooldown.ErrOnCooldown
		wantSubstring string
	}{
		{
			name:          "hours and minutes",
			err:           cooldown.ErrOnCooldown{Action: "spin", Remaining: 23*time.Hour + 15*time.Minute},
			wantSubstring: fmt.Sprintf(cooldown.ErrFmtCooldownWithHours, "spin", 23, 15),
		},
		{
			name:          "minutes and seconds",
			err:           cooldown.ErrOnCooldown{Action: "ad", Remaining: 2*time.Minute + 30*time.Second},
			wantSubstring: fmt.Sprintf(cooldown.ErrFmtCooldownWithMinutes, "ad", 2, 30),
		},
		{
			name:          "seconds only",
			err:           cooldown.ErrOnCooldown{Action: "ad", Remaining: 45 * time.Second},
			wantSubstring: fmt.Sprintf(cooldown.ErrFmtCooldownSecondsOnly, "ad", 45),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.err.Error(), tt.wantSubstring)
		})
	}
}

// TestErrOnCooldown_Is tests the errors.Is() compatibility
func TestErrOnCooldown_Is(t *testing.T) {
	err := cooldown.ErrOnCooldown{Action: "spin", Remaining: time.Minute}
	wrapped := fmt.Errorf("claim failed: %w", err)

	assert.True(t, errors.Is(wrapped, cooldown.ErrOnCooldown{}))
	assert.True(t, errors.Is(wrapped, domain.ErrOnCooldown))
	assert.False(t, errors.Is(err, errors.New("other error")))
	assert.False(t, errors.Is(err, domain.ErrInsufficientBalance))
}
