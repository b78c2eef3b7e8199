package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// UIState stores small, user-facing TUI state for restoring the last screen
// on relaunch. It is intentionally best effort: callers tolerate missing or
// invalid data. Entity data is never written here.
type UIState struct {
	Version int `json:"version"`

	// View is one of: queue|patients|inventory|appointments|deliveries|messages|users
	View string `json:"view,omitempty"`

	SelectedPrescriptionID string `json:"selectedPrescriptionId,omitempty"`
	SelectedPatientID      string `json:"selectedPatientId,omitempty"`
	SelectedDeliveryID     string `json:"selectedDeliveryId,omitempty"`

	// ShowDetail round-trips false, so no omitempty.
	ShowDetail bool `json:"showDetail"`
}

const uiStateFileName = "ui_state.sqlite"

// UIStatePath resolves the state file location: PULSERX_STATE_DIR when set,
// otherwise the user config dir.
func UIStatePath() string {
	if dir := strings.TrimSpace(os.Getenv("PULSERX_STATE_DIR")); dir != "" {
		return filepath.Join(dir, uiStateFileName)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "pulserx", uiStateFileName)
}

func openUIStateDB(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS ui_state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// LoadUIState reads the saved state. Missing file or corrupted content yields
// a fresh state, not an error the caller has to care about.
func LoadUIState(ctx context.Context, path string) (*UIState, error) {
	// The detail pane defaults to visible on a fresh profile.
	fresh := &UIState{Version: 1, ShowDetail: true}
	if strings.TrimSpace(path) == "" {
		return fresh, nil
	}
	db, err := openUIStateDB(ctx, path)
	if err != nil {
		return fresh, err
	}
	defer db.Close()

	var raw string
	err = db.QueryRowContext(ctx, `SELECT value FROM ui_state WHERE key = 'state'`).Scan(&raw)
	if err == sql.ErrNoRows {
		return fresh, nil
	}
	if err != nil {
		return fresh, err
	}
	var st UIState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return fresh, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return &st, nil
}

// SaveUIState upserts the state blob.
func SaveUIState(ctx context.Context, path string, st *UIState) error {
	if st == nil || strings.TrimSpace(path) == "" {
		return nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	db, err := openUIStateDB(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO ui_state (key, value) VALUES ('state', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		string(b))
	return err
}
