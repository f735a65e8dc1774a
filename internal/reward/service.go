package reward

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CoinQuest_Go/internal/cooldown"
	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/event"
	"github.com/osse101/CoinQuest_Go/internal/ledger"
	"github.com/osse101/CoinQuest_Go/internal/logger"
	"github.com/osse101/CoinQuest_Go/internal/metrics"
	"github.com/osse101/CoinQuest_Go/internal/repository"
	"github.com/osse101/CoinQuest_Go/internal/utils"
)

// ClaimRequest asks for the reward of one action. It never carries an amount.
// Video claims name the view session issued by StartVideo.
type ClaimRequest struct {
	AuthID         string
	Action         domain.Action
	Slot           string
	ViewSessionID  string
	IdempotencyKey string
}

// ClaimResult describes an accepted (or replayed) claim
type ClaimResult struct {
	Action          domain.Action `json:"action"`
	Slot            string        `json:"slot,omitempty"`
	Amount          int           `json:"amount"`
	Balance         int           `json:"balance"`
	Streak          int           `json:"streak"`
	TransactionID   string        `json:"transaction_id"`
	NextAvailableAt *time.Time    `json:"next_available_at,omitempty"`
	Replayed        bool          `json:"replayed"`
}

// VideoSession is a started view and the earliest time it can be claimed
type VideoSession struct {
	domain.VideoView
	ClaimableAt time.Time `json:"claimable_at"`
}

// Service grants rewards for cooldown-gated actions
type Service interface {
	Claim(ctx context.Context, req ClaimRequest) (*ClaimResult, error)
	StartVideo(ctx context.Context, authID string) (*VideoSession, error)
	WheelSegments() []WheelSegment
}

// Repository is what the claim flow needs from storage
type Repository interface {
	BeginTx(ctx context.Context) (repository.Tx, error)
}

type service struct {
	repo      Repository
	cooldowns cooldown.Config
	resolver  *Resolver
	writer    *ledger.Writer
	bus       event.Bus
	now       func() time.Time
}

// NewService creates a reward service
func NewService(repo Repository, cooldowns cooldown.Config, bus event.Bus) Service {
	return &service{
		repo:      repo,
		cooldowns: cooldowns,
		resolver:  NewResolver(),
		writer:    ledger.NewWriter(),
		bus:       bus,
		now:       time.Now,
	}
}

func (s *service) WheelSegments() []WheelSegment {
	return WheelSegments()
}

// StartVideo issues a new view session, replacing the user's previous one
// whether or not it was claimed.
func (s *service) StartVideo(ctx context.Context, authID string) (*VideoSession, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, authID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLockProfileFailed, err)
	}

	now := s.now()
	view := domain.VideoView{ID: uuid.NewString(), UserID: profile.ID, StartedAt: now}
	if err := tx.StartVideoView(ctx, &view); err != nil {
		return nil, fmt.Errorf(ErrMsgStartVideoFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgVideoStarted, "user_id", profile.ID, "view_session_id", view.ID)
	return &VideoSession{
		VideoView:   view,
		ClaimableAt: now.Add(s.minWatch()),
	}, nil
}

func (s *service) minWatch() time.Duration {
	if s.cooldowns.DevMode {
		return 0
	}
	return s.cooldowns.GetCooldownDuration(domain.ActionVideo)
}

// Claim evaluates the cooldown, resolves the amount and writes the ledger entry in one
// transaction holding the user row lock. Concurrent claims for the same user serialize on
// that lock, so only one of them can pass a given cooldown window.
func (s *service) Claim(ctx context.Context, req ClaimRequest) (*ClaimResult, error) {
	log := logger.FromContext(ctx)

	if err := validateClaim(req); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, req.AuthID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLockProfileFailed, err)
	}

	prior, err := s.writer.FindReplay(ctx, tx, profile.ID, req.IdempotencyKey, req.Action.Source())
	if err != nil {
		return nil, err
	}
	if prior != nil {
		log.Info(LogMsgClaimReplayed, "action", req.Action, "user_id", profile.ID)
		metrics.IdempotentReplays.WithLabelValues(string(prior.Source)).Inc()
		return &ClaimResult{
			Action:        req.Action,
			Slot:          req.Slot,
			Amount:        prior.Amount,
			Balance:       profile.Coins,
			Streak:        profile.DailyStreak,
			TransactionID: prior.ID,
			Replayed:      true,
		}, nil
	}

	now := s.now()
	lastUsed, err := s.lastUsed(ctx, tx, profile, req)
	if err != nil {
		return nil, err
	}
	if err := s.cooldowns.Check(req.Action, lastUsed, now); err != nil {
		var cdErr cooldown.ErrOnCooldown
		if errors.As(err, &cdErr) {
			log.Debug(LogMsgClaimOnCooldown, "action", req.Action, "slot", req.Slot, "remaining", cdErr.Remaining)
			metrics.CooldownRejections.WithLabelValues(string(req.Action)).Inc()
		}
		return nil, err
	}

	streak := EffectiveStreak(profile, now)
	amount := s.resolver.Resolve(req.Action, Context{Streak: streak})

	txn, err := s.writer.Apply(ctx, tx, profile, ledger.Entry{
		Delta:          amount,
		Source:         req.Action.Source(),
		Description:    describe(req, amount, streak),
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgApplyLedgerFailed, err)
	}

	if err := s.recordClaim(ctx, tx, profile, req, streak, now); err != nil {
		return nil, fmt.Errorf(ErrMsgRecordClaimFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	metrics.RewardClaims.WithLabelValues(string(req.Action)).Inc()
	log.Info(LogMsgClaimAccepted,
		"action", req.Action,
		"slot", req.Slot,
		"user_id", profile.ID,
		"amount", amount,
		"balance", profile.Coins)

	if err := s.bus.Publish(ctx, event.NewWalletUpdatedEvent(profile.ID, profile.AuthID, profile.Coins, amount, txn.Source)); err != nil {
		log.Warn(LogMsgPublishFailed, "error", err)
	}

	result := &ClaimResult{
		Action:        req.Action,
		Slot:          req.Slot,
		Amount:        amount,
		Balance:       profile.Coins,
		Streak:        profile.DailyStreak,
		TransactionID: txn.ID,
	}
	// A video's wait restarts with the next view session, so it has no fixed next time
	if d := s.cooldowns.GetCooldownDuration(req.Action); d > 0 && !s.cooldowns.DevMode && req.Action != domain.ActionVideo {
		next := now.Add(d)
		result.NextAvailableAt = &next
	}
	return result, nil
}

func validateClaim(req ClaimRequest) error {
	if !req.Action.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAction, req.Action)
	}
	if req.Action == domain.ActionVideo {
		if req.ViewSessionID == "" {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgViewSessionRequired)
		}
	} else if req.ViewSessionID != "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgViewSessionNotApplicable)
	}
	if req.Action == domain.ActionAd {
		return domain.ValidateAdSlot(req.Slot)
	}
	if req.Slot != "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgSlotNotApplicable)
	}
	return nil
}

// lastUsed reads the authoritative timestamp the cooldown is measured from.
// For video that is the start of the presented view session, which must still be open.
func (s *service) lastUsed(ctx context.Context, tx repository.Tx, profile *domain.Profile, req ClaimRequest) (*time.Time, error) {
	switch req.Action {
	case domain.ActionVideo:
		view, err := tx.GetVideoView(ctx, profile.ID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgGetVideoViewFailed, err)
		}
		if view == nil || view.ID != req.ViewSessionID {
			return nil, fmt.Errorf("%w: %q", domain.ErrVideoViewNotFound, req.ViewSessionID)
		}
		if view.ClaimedAt != nil {
			return nil, domain.ErrVideoViewClaimed
		}
		started := view.StartedAt
		return &started, nil
	case domain.ActionDailyReward:
		return profile.LastDailyReward, nil
	case domain.ActionSpin:
		return profile.LastSpin, nil
	case domain.ActionAd:
		ts, err := tx.GetAdCooldown(ctx, profile.ID, req.Slot)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgGetAdCooldownFail, err)
		}
		return ts, nil
	}
	return nil, nil
}

func (s *service) recordClaim(ctx context.Context, tx repository.Tx, profile *domain.Profile, req ClaimRequest, streak int, now time.Time) error {
	switch req.Action {
	case domain.ActionDailyReward:
		if err := tx.UpdateDailyClaim(ctx, profile.ID, streak+1, now); err != nil {
			return err
		}
		profile.DailyStreak = streak + 1
		profile.LastDailyReward = &now
	case domain.ActionSpin:
		if err := tx.UpdateLastSpin(ctx, profile.ID, now); err != nil {
			return err
		}
		profile.LastSpin = &now
	case domain.ActionAd:
		return tx.UpsertAdCooldown(ctx, profile.ID, req.Slot, now)
	case domain.ActionVideo:
		return tx.MarkVideoViewClaimed(ctx, profile.ID, now)
	}
	return nil
}

// EffectiveStreak is the profile streak, or zero when the last claim is older than StreakResetWindow
func EffectiveStreak(profile *domain.Profile, now time.Time) int {
	if profile.LastDailyReward == nil {
		return 0
	}
	if now.Sub(*profile.LastDailyReward) > StreakResetWindow {
		return 0
	}
	return profile.DailyStreak
}

func describe(req ClaimRequest, amount, streak int) string {
	coins := utils.FormatCoins(amount)
	switch req.Action {
	case domain.ActionAd:
		return fmt.Sprintf(DescFmtAd, req.Slot, coins)
	case domain.ActionVideo:
		return fmt.Sprintf(DescFmtVideo, coins)
	case domain.ActionDailyReward:
		return fmt.Sprintf(DescFmtDaily, streak+1, coins)
	default:
		return fmt.Sprintf(DescFmtSpin, coins)
	}
}
