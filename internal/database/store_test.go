package database

import (
	"context"
	"testing"
	"time"
)

func testStore(t *testing.T) Store {
	t.Helper()
	db, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { CloseDB(db) })
	return NewStore(db, nil)
}

func sampleRender(guildID, messageID, mode string) *Render {
	return &Render{
		GuildID:     guildID,
		ChannelID:   "chan-1",
		MessageID:   messageID,
		RequesterID: "req-1",
		AuthorID:    "auth-1",
		Mode:        mode,
		Width:       800,
		Height:      138,
	}
}

func TestRecordRenderValidation(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		render *Render
	}{
		{name: "nil render", render: nil},
		{name: "missing guild", render: sampleRender("", "m1", "light")},
		{name: "missing message", render: sampleRender("g1", "", "light")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.RecordRender(ctx, tt.render); err == nil {
				t.Error("RecordRender accepted an invalid render")
			}
		})
	}
}

func TestRecordRenderAssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	ctx := context.Background()

	render := sampleRender("g1", "m1", "light")
	if err := store.RecordRender(ctx, render); err != nil {
		t.Fatalf("RecordRender returned error: %v", err)
	}
	if render.ID == 0 {
		t.Error("RecordRender left ID unset")
	}
	if render.CreatedAt.IsZero() {
		t.Error("RecordRender left CreatedAt unset")
	}
}

func TestGetGuildStats(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	ctx := context.Background()

	for i, mode := range []string{"light", "light", "dark"} {
		render := sampleRender("g1", "m"+string(rune('1'+i)), mode)
		if err := store.RecordRender(ctx, render); err != nil {
			t.Fatalf("RecordRender returned error: %v", err)
		}
	}
	if err := store.RecordRender(ctx, sampleRender("g2", "x1", "dark")); err != nil {
		t.Fatalf("RecordRender returned error: %v", err)
	}

	stats, err := store.GetGuildStats(ctx, "g1")
	if err != nil {
		t.Fatalf("GetGuildStats returned error: %v", err)
	}
	if stats.Total != 3 || stats.Light != 2 || stats.Dark != 1 {
		t.Errorf("GetGuildStats = %+v, want total 3, light 2, dark 1", stats)
	}
	if stats.LastRenderAt == nil {
		t.Error("GetGuildStats returned nil LastRenderAt for a guild with renders")
	}
}

func TestGetGuildStatsEmptyGuild(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	stats, err := store.GetGuildStats(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetGuildStats returned error: %v", err)
	}
	if stats.Total != 0 || stats.Light != 0 || stats.Dark != 0 {
		t.Errorf("GetGuildStats for empty guild = %+v, want zeros", stats)
	}
	if stats.LastRenderAt != nil {
		t.Errorf("GetGuildStats for empty guild has LastRenderAt %v, want nil", stats.LastRenderAt)
	}
}

func TestDeleteRendersBefore(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	ctx := context.Background()

	for _, id := range []string{"m1", "m2", "m3"} {
		if err := store.RecordRender(ctx, sampleRender("g1", id, "light")); err != nil {
			t.Fatalf("RecordRender returned error: %v", err)
		}
	}

	// Nothing is older than a cutoff in the past.
	deleted, err := store.DeleteRendersBefore(ctx, time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatalf("DeleteRendersBefore returned error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("DeleteRendersBefore(past cutoff) deleted %d rows, want 0", deleted)
	}

	// Everything is older than a cutoff in the future.
	deleted, err = store.DeleteRendersBefore(ctx, time.Now().UTC().Add(time.Hour))
	if err != nil {
		t.Fatalf("DeleteRendersBefore returned error: %v", err)
	}
	if deleted != 3 {
		t.Errorf("DeleteRendersBefore(future cutoff) deleted %d rows, want 3", deleted)
	}

	stats, err := store.GetGuildStats(ctx, "g1")
	if err != nil {
		t.Fatalf("GetGuildStats returned error: %v", err)
	}
	if stats.Total != 0 {
		t.Errorf("guild still has %d renders after prune, want 0", stats.Total)
	}
}

func TestRunSQLMaintenance(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	if err := store.RunSQLMaintenance(context.Background()); err != nil {
		t.Errorf("RunSQLMaintenance returned error: %v", err)
	}
}
