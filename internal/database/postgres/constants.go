package postgres

// Save queries
const (
	queryUpsertSave = `
INSERT INTO saves (slot, data) VALUES ($1, $2)
ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`
	querySelectSave = `SELECT data FROM saves WHERE slot = $1`
	queryListSaves  = `SELECT slot, level, money, updated_at FROM saves ORDER BY updated_at DESC, slot`
)

// Error Messages - Save Operations
const (
	ErrMsgFailedToWriteSave  = "failed to write save"
	ErrMsgFailedToReadSave   = "failed to read save"
	ErrMsgFailedToListSaves  = "failed to list saves"
)
