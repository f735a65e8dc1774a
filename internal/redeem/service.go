package redeem

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/event"
	"github.com/osse101/CoinQuest_Go/internal/ledger"
	"github.com/osse101/CoinQuest_Go/internal/logger"
	"github.com/osse101/CoinQuest_Go/internal/metrics"
	"github.com/osse101/CoinQuest_Go/internal/repository"
)

// Config controls flow timing and cancellation policy
type Config struct {
	StepDuration   time.Duration
	RefundOnCancel bool
	SessionTTL     time.Duration
}

// DefaultConfig returns the standard three 10-second steps, no refund on cancel
func DefaultConfig() Config {
	return Config{
		StepDuration: DefaultStepDuration,
		SessionTTL:   DefaultSessionTTL,
	}
}

// SessionView is what clients see of a redeem flow
type SessionView struct {
	SessionID        string     `json:"session_id,omitempty"`
	CodeID           string     `json:"code_id,omitempty"`
	CodeName         string     `json:"code_name,omitempty"`
	CoinCost         int        `json:"coin_cost,omitempty"`
	State            State      `json:"state"`
	Step             int        `json:"step"`
	RemainingSeconds int        `json:"remaining_seconds"`
	CanConfirm       bool       `json:"can_confirm"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	Balance          *int       `json:"balance,omitempty"`
	CodeValue        string     `json:"code_value,omitempty"`
	Replayed         bool       `json:"replayed,omitempty"`
}

// Service drives the redeem flow
type Service interface {
	ListCodes(ctx context.Context) ([]domain.RedeemCode, error)
	Start(ctx context.Context, authID, codeID, idempotencyKey string) (*SessionView, error)
	Status(ctx context.Context, authID string) (*SessionView, error)
	Get(ctx context.Context, authID, sessionID string) (*domain.RedeemSession, error)
	Confirm(ctx context.Context, authID, sessionID string) (*SessionView, error)
	Cancel(ctx context.Context, authID, sessionID string) (*SessionView, error)
	View(session *domain.RedeemSession, now time.Time) *SessionView
}

type service struct {
	repo   repository.Redeem
	config Config
	writer *ledger.Writer
	bus    event.Bus
	now    func() time.Time
}

// NewService creates a redeem service
func NewService(repo repository.Redeem, config Config, bus event.Bus) Service {
	if config.StepDuration <= 0 {
		config.StepDuration = DefaultStepDuration
	}
	return &service{
		repo:   repo,
		config: config,
		writer: ledger.NewWriter(),
		bus:    bus,
		now:    time.Now,
	}
}

// ListCodes returns active codes ordered by cost ascending, without their values
func (s *service) ListCodes(ctx context.Context) ([]domain.RedeemCode, error) {
	codes, err := s.repo.ListRedeemCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCodesFailed, err)
	}
	for i := range codes {
		codes[i].Value = ""
	}
	return codes, nil
}

// Start moves Idle -> Step1. The cost is debited here, before any step completes.
func (s *service) Start(ctx context.Context, authID, codeID, idempotencyKey string) (*SessionView, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, authID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLockProfileFailed, err)
	}

	prior, err := s.writer.FindReplay(ctx, tx, profile.ID, idempotencyKey, domain.SourceRedeem)
	if err != nil {
		return nil, err
	}
	if prior != nil {
		return s.replayStart(ctx, tx, prior)
	}

	active, err := tx.GetActiveRedeemSession(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSessionFailed, err)
	}
	if active != nil {
		return nil, domain.ErrRedeemSessionActive
	}

	code, err := tx.GetRedeemCode(ctx, codeID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCodeFailed, err)
	}
	if !code.IsActive {
		return nil, fmt.Errorf("%w: %q", domain.ErrRedeemCodeNotFound, codeID)
	}

	debit, err := s.writer.Apply(ctx, tx, profile, ledger.Entry{
		Delta:          -code.CoinCost,
		Source:         domain.SourceRedeem,
		Description:    fmt.Sprintf(DescFmtRedeemed, code.Name),
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			metrics.InsufficientBalanceRejections.WithLabelValues(string(domain.SourceRedeem)).Inc()
		}
		return nil, err
	}

	now := s.now()
	session := &domain.RedeemSession{
		ID:            uuid.NewString(),
		UserID:        profile.ID,
		CodeID:        code.ID,
		CodeName:      code.Name,
		CoinCost:      code.CoinCost,
		State:         domain.RedeemSessionActive,
		StartedAt:     now,
		TransactionID: debit.ID,
	}
	if err := tx.CreateRedeemSession(ctx, session); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSessionFail, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	log.Info(LogMsgSessionStarted, "session_id", session.ID, "code_id", code.ID, "user_id", profile.ID)
	s.publish(ctx,
		event.NewWalletUpdatedEvent(profile.ID, profile.AuthID, profile.Coins, -code.CoinCost, domain.SourceRedeem),
		event.NewRedeemUpdatedEvent(session.ID, profile.AuthID, session.State),
	)

	view := s.View(session, now)
	balance := profile.Coins
	view.Balance = &balance
	return view, nil
}

// replayStart answers a retried start with the session its debit opened.
// A session that has since finished cannot be resumed.
func (s *service) replayStart(ctx context.Context, tx repository.Tx, prior *domain.Transaction) (*SessionView, error) {
	session, err := tx.GetRedeemSessionByTransaction(ctx, prior.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSessionFailed, err)
	}
	if session.State != domain.RedeemSessionActive {
		return nil, fmt.Errorf("%w: start already processed", domain.ErrRedeemSessionClosed)
	}

	logger.FromContext(ctx).Info(LogMsgStartReplayed, "session_id", session.ID)
	metrics.IdempotentReplays.WithLabelValues(string(domain.SourceRedeem)).Inc()
	view := s.View(session, s.now())
	view.Replayed = true
	return view, nil
}

// Status returns the user's active flow, or Idle
func (s *service) Status(ctx context.Context, authID string) (*SessionView, error) {
	profile, err := s.repo.GetProfileByAuthID(ctx, authID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProfileFailed, err)
	}
	session, err := s.repo.GetActiveRedeemSession(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSessionFailed, err)
	}
	return s.View(session, s.now()), nil
}

// Get returns a session owned by the user
func (s *service) Get(ctx context.Context, authID, sessionID string) (*domain.RedeemSession, error) {
	profile, err := s.repo.GetProfileByAuthID(ctx, authID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProfileFailed, err)
	}
	session, err := s.repo.GetRedeemSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSessionFailed, err)
	}
	if session.UserID != profile.ID {
		return nil, domain.ErrRedeemSessionNotFound
	}
	return session, nil
}

// Confirm moves Step3 -> Ready once the last countdown has run out and reveals the code.
// Confirming an already revealed session returns the code again.
func (s *service) Confirm(ctx context.Context, authID, sessionID string) (*SessionView, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, session, err := s.lockOwnedSession(ctx, tx, authID, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch session.State {
	case domain.RedeemSessionCancelled:
		return nil, domain.ErrRedeemSessionClosed
	case domain.RedeemSessionActive:
		if !Phase(session.StartedAt, now, s.config.StepDuration).CanConfirm {
			return nil, domain.ErrRedeemNotReady
		}
	}

	code, err := tx.GetRedeemCode(ctx, session.CodeID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCodeFailed, err)
	}

	revealedNow := session.State == domain.RedeemSessionActive
	if revealedNow {
		if err := tx.FinishRedeemSession(ctx, session.ID, domain.RedeemSessionRevealed, now); err != nil {
			return nil, fmt.Errorf(ErrMsgFinishSessionFail, err)
		}
		session.State = domain.RedeemSessionRevealed
		session.FinishedAt = &now
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	if revealedNow {
		log.Info(LogMsgSessionRevealed, "session_id", session.ID, "user_id", profile.ID)
		s.publish(ctx, event.NewRedeemUpdatedEvent(session.ID, profile.AuthID, session.State))
	}

	view := s.View(session, now)
	view.CodeValue = code.Value
	return view, nil
}

// Cancel resets an unfinished flow to Idle. Coins stay spent unless RefundOnCancel is set.
// Cancelling a finished session is a no-op.
func (s *service) Cancel(ctx context.Context, authID, sessionID string) (*SessionView, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, session, err := s.lockOwnedSession(ctx, tx, authID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != domain.RedeemSessionActive {
		return &SessionView{State: StateIdle}, nil
	}

	now := s.now()
	if err := tx.FinishRedeemSession(ctx, session.ID, domain.RedeemSessionCancelled, now); err != nil {
		return nil, fmt.Errorf(ErrMsgFinishSessionFail, err)
	}

	refunded := 0
	if s.config.RefundOnCancel {
		if _, err := s.writer.Apply(ctx, tx, profile, ledger.Entry{
			Delta:          session.CoinCost,
			Source:         domain.SourceRedeem,
			Description:    fmt.Sprintf(DescFmtRefund, session.CodeName),
			IdempotencyKey: RefundKeyPrefix + session.ID,
		}); err != nil {
			return nil, fmt.Errorf(ErrMsgRefundFailed, err)
		}
		refunded = session.CoinCost
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	log.Info(LogMsgSessionCancelled, "session_id", session.ID, "user_id", profile.ID, "refunded", refunded)
	events := []event.Event{event.NewRedeemUpdatedEvent(session.ID, profile.AuthID, domain.RedeemSessionCancelled)}
	if refunded > 0 {
		events = append(events, event.NewWalletUpdatedEvent(profile.ID, profile.AuthID, profile.Coins, refunded, domain.SourceRedeem))
	}
	s.publish(ctx, events...)

	balance := profile.Coins
	return &SessionView{State: StateIdle, Balance: &balance}, nil
}

// View renders a session at now
func (s *service) View(session *domain.RedeemSession, now time.Time) *SessionView {
	p := Evaluate(session, now, s.config.StepDuration)
	view := &SessionView{
		State:            p.State,
		Step:             p.Step,
		RemainingSeconds: remainingSeconds(p.Remaining),
		CanConfirm:       p.CanConfirm,
	}
	if session != nil {
		started := session.StartedAt
		view.SessionID = session.ID
		view.CodeID = session.CodeID
		view.CodeName = session.CodeName
		view.CoinCost = session.CoinCost
		view.StartedAt = &started
	}
	return view
}

func (s *service) lockOwnedSession(ctx context.Context, tx repository.Tx, authID, sessionID string) (*domain.Profile, *domain.RedeemSession, error) {
	profile, err := tx.GetProfileForUpdate(ctx, authID)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgLockProfileFailed, err)
	}
	session, err := tx.GetRedeemSessionForUpdate(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgGetSessionFailed, err)
	}
	if session.UserID != profile.ID {
		return nil, nil, domain.ErrRedeemSessionNotFound
	}
	return profile, session, nil
}

func (s *service) publish(ctx context.Context, events ...event.Event) {
	for _, evt := range events {
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}
}

func remainingSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	secs := d / time.Second
	if d%time.Second != 0 {
		secs++
	}
	return int(secs)
}
