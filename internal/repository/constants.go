package repository

const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
)
