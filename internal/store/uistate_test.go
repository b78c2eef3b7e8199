package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestUIState_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ui_state.sqlite")

	// Missing file => fresh state, no error.
	st, err := LoadUIState(ctx, path)
	if err != nil {
		t.Fatalf("load fresh: %v", err)
	}
	if st.Version != 1 || st.View != "" || !st.ShowDetail {
		t.Fatalf("fresh state = %+v", st)
	}

	st.View = "inventory"
	st.SelectedPrescriptionID = "RX240102"
	st.ShowDetail = true
	if err := SaveUIState(ctx, path, st); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadUIState(ctx, path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.View != "inventory" || got.SelectedPrescriptionID != "RX240102" || !got.ShowDetail {
		t.Fatalf("reload = %+v", got)
	}

	// Second save overwrites.
	got.View = "queue"
	if err := SaveUIState(ctx, path, got); err != nil {
		t.Fatalf("resave: %v", err)
	}
	again, err := LoadUIState(ctx, path)
	if err != nil {
		t.Fatalf("reload2: %v", err)
	}
	if again.View != "queue" {
		t.Fatalf("view = %q", again.View)
	}

	// A hidden detail pane survives the round trip too.
	again.ShowDetail = false
	if err := SaveUIState(ctx, path, again); err != nil {
		t.Fatalf("save hidden: %v", err)
	}
	hidden, err := LoadUIState(ctx, path)
	if err != nil {
		t.Fatalf("reload hidden: %v", err)
	}
	if hidden.ShowDetail {
		t.Fatal("hidden detail pane came back visible")
	}
}

func TestUIState_EmptyPathIsNoop(t *testing.T) {
	ctx := context.Background()
	st, err := LoadUIState(ctx, "")
	if err != nil || st == nil {
		t.Fatalf("load with empty path: st=%v err=%v", st, err)
	}
	if err := SaveUIState(ctx, "", st); err != nil {
		t.Fatalf("save with empty path: %v", err)
	}
}
