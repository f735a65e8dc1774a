package postgres

// PostgreSQL Error Codes
const (
	PgErrorCodeUniqueViolation = "23505"
	PgErrorCodeCheckViolation  = "23514"
)

// Constraint names the store translates into domain errors
const (
	ConstraintOneActiveSession = "idx_redeem_sessions_one_active"
	ConstraintIdempotencyKey   = "transactions_user_id_idempotency_key_key"
	ConstraintCoinsNonNegative = "users_coins_check"
)

// Profile queries
const (
	profileColumns = `id, auth_id, username, coins, daily_streak, last_daily_reward, last_spin, created_at, updated_at`

	SQLGetProfileByAuthID = `SELECT ` + profileColumns + ` FROM users WHERE auth_id = $1`

	SQLGetProfileForUpdate = `SELECT ` + profileColumns + ` FROM users WHERE auth_id = $1 FOR UPDATE`

	SQLCreateProfile = `
		INSERT INTO users (auth_id, username, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (auth_id) DO NOTHING`

	SQLUpdateBalance = `UPDATE users SET coins = $2, updated_at = NOW() WHERE id = $1`

	SQLUpdateDailyClaim = `
		UPDATE users SET daily_streak = $2, last_daily_reward = $3, updated_at = NOW()
		WHERE id = $1`

	SQLUpdateLastSpin = `UPDATE users SET last_spin = $2, updated_at = NOW() WHERE id = $1`
)

// Ad cooldown queries
const (
	SQLGetAdCooldown = `SELECT last_used_at FROM ad_cooldowns WHERE user_id = $1 AND ad_type = $2`

	SQLGetAdCooldowns = `SELECT ad_type, last_used_at FROM ad_cooldowns WHERE user_id = $1`

	SQLUpsertAdCooldown = `
		INSERT INTO ad_cooldowns (user_id, ad_type, last_used_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, ad_type) DO UPDATE SET last_used_at = EXCLUDED.last_used_at`
)

// Video view queries
const (
	SQLStartVideoView = `
		INSERT INTO video_views (user_id, id, started_at, claimed_at)
		VALUES ($1, $2, $3, NULL)
		ON CONFLICT (user_id) DO UPDATE
		SET id = EXCLUDED.id, started_at = EXCLUDED.started_at, claimed_at = NULL`

	SQLGetVideoView = `SELECT id, user_id, started_at, claimed_at FROM video_views WHERE user_id = $1`

	SQLMarkVideoViewClaimed = `UPDATE video_views SET claimed_at = $2 WHERE user_id = $1 AND claimed_at IS NULL`
)

// Transaction queries
const (
	transactionColumns = `id, user_id, type, amount, source, description, idempotency_key, balance_after, created_at`

	SQLInsertTransaction = `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	SQLGetTransactionByIdempotencyKey = `SELECT ` + transactionColumns + `
		FROM transactions WHERE user_id = $1 AND idempotency_key = $2`

	SQLListTransactions = `SELECT ` + transactionColumns + `
		FROM transactions WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	SQLGetLedgerTotals = `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'credit'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'debit'), 0),
			COUNT(*)
		FROM transactions WHERE user_id = $1`
)

// Redeem queries
const (
	SQLListRedeemCodes = `
		SELECT id, name, coin_cost, code_value, is_active
		FROM redeem_codes WHERE is_active
		ORDER BY coin_cost ASC, id ASC`

	SQLGetRedeemCode = `SELECT id, name, coin_cost, code_value, is_active FROM redeem_codes WHERE id = $1`

	sessionSelect = `
		SELECT s.id, s.user_id, s.code_id, c.name, s.coin_cost, s.state, s.started_at, s.finished_at, s.transaction_id
		FROM redeem_sessions s
		JOIN redeem_codes c ON c.id = s.code_id`

	SQLGetRedeemSession = sessionSelect + ` WHERE s.id = $1`

	SQLGetRedeemSessionForUpdate = sessionSelect + ` WHERE s.id = $1 FOR UPDATE OF s`

	SQLGetActiveRedeemSession = sessionSelect + ` WHERE s.user_id = $1 AND s.state = 'active'`

	SQLGetRedeemSessionByTransaction = sessionSelect + ` WHERE s.transaction_id = $1`

	SQLCreateRedeemSession = `
		INSERT INTO redeem_sessions (id, user_id, code_id, coin_cost, state, started_at, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	SQLFinishRedeemSession = `
		UPDATE redeem_sessions SET state = $2, finished_at = $3
		WHERE id = $1 AND state = 'active'`
)

// Maintenance queries
const (
	SQLResetExpiredStreaks = `
		UPDATE users SET daily_streak = 0, updated_at = NOW()
		WHERE daily_streak > 0 AND last_daily_reward < $1`

	SQLCancelStaleRedeemSessions = `
		UPDATE redeem_sessions SET state = 'cancelled', finished_at = $2
		WHERE state = 'active' AND started_at < $1`
)

// Error Messages
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToGetProfile        = "failed to get profile"
	ErrMsgFailedToCreateProfile     = "failed to create profile"
	ErrMsgFailedToUpdateBalance     = "failed to update balance"
	ErrMsgFailedToUpdateDailyClaim  = "failed to update daily claim"
	ErrMsgFailedToUpdateLastSpin    = "failed to update last spin"
	ErrMsgFailedToGetAdCooldowns    = "failed to get ad cooldowns"
	ErrMsgFailedToUpsertAdCooldown  = "failed to upsert ad cooldown"
	ErrMsgFailedToStartVideoView    = "failed to start video view"
	ErrMsgFailedToGetVideoView      = "failed to get video view"
	ErrMsgFailedToClaimVideoView    = "failed to mark video view claimed"
	ErrMsgFailedToInsertTransaction = "failed to insert transaction"
	ErrMsgFailedToGetTransaction    = "failed to get transaction"
	ErrMsgFailedToListTransactions  = "failed to list transactions"
	ErrMsgFailedToGetLedgerTotals   = "failed to get ledger totals"
	ErrMsgFailedToListRedeemCodes   = "failed to list redeem codes"
	ErrMsgFailedToGetRedeemCode     = "failed to get redeem code"
	ErrMsgFailedToGetRedeemSession  = "failed to get redeem session"
	ErrMsgFailedToCreateSession     = "failed to create redeem session"
	ErrMsgFailedToFinishSession     = "failed to finish redeem session"
	ErrMsgFailedToResetStreaks      = "failed to reset expired streaks"
	ErrMsgFailedToCancelSessions    = "failed to cancel stale redeem sessions"
	ErrMsgRowNotUpdated             = "no row updated"
)
