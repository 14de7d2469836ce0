package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/gorm"

	"github.com/johnquangdev/insight-stream/internal/domain/entities"
	"github.com/johnquangdev/insight-stream/internal/infrastructure/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if _, err := database.Migrate(db, "sqlite", migrate.Up); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = database.CloseDB(db) })
	return db
}

func TestMeetingRepository_CreateWithInsightsAndRead(t *testing.T) {
	ctx := context.Background()
	repo := NewMeetingRepository(newTestDB(t))

	meeting := entities.NewMeeting("Q4 review", "David Kim: numbers look good.", "uploads/q4.mp4")
	meeting.SummaryText = `{"Summary":"good quarter"}`
	insights := []entities.Insight{
		{InsightType: "Summary", Content: "good quarter"},
		{InsightType: "Next_Steps", Content: "send deck"},
	}

	if err := repo.CreateWithInsights(ctx, meeting, insights); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByID(ctx, meeting.ID)
	if err != nil || got == nil {
		t.Fatalf("find: %v %v", got, err)
	}
	if got.TranscriptText != "David Kim: numbers look good." {
		t.Fatalf("unexpected transcript %q", got.TranscriptText)
	}

	stored, err := repo.ListInsights(ctx, meeting.ID)
	if err != nil {
		t.Fatalf("list insights: %v", err)
	}
	if len(stored) != 2 || stored[0].InsightType != "Next_Steps" {
		t.Fatalf("unexpected insights %+v", stored)
	}
}

func TestMeetingRepository_FindMissingReturnsNil(t *testing.T) {
	repo := NewMeetingRepository(newTestDB(t))
	got, err := repo.FindByID(context.Background(), uuid.New())
	if err != nil || got != nil {
		t.Fatalf("expected nil, nil; got %v, %v", got, err)
	}
}

func TestMeetingRepository_UpdateSummaryPersists(t *testing.T) {
	ctx := context.Background()
	repo := NewMeetingRepository(newTestDB(t))

	meeting := entities.NewMeeting("Kickoff", "hello", "")
	if err := repo.CreateWithInsights(ctx, meeting, nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	summary := `{"Summary":"edited"}`
	updated, err := repo.Update(ctx, meeting.ID, entities.MeetingPatch{SummaryText: &summary})
	if err != nil || updated == nil {
		t.Fatalf("update: %v %v", updated, err)
	}

	reread, err := repo.FindByID(ctx, meeting.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if reread.SummaryText != summary {
		t.Fatalf("summary not persisted: %q", reread.SummaryText)
	}
	if reread.Title != "Kickoff" {
		t.Fatalf("title should be untouched, got %q", reread.Title)
	}
}

func TestMeetingRepository_UpdateMissing(t *testing.T) {
	repo := NewMeetingRepository(newTestDB(t))
	title := "x"
	got, err := repo.Update(context.Background(), uuid.New(), entities.MeetingPatch{Title: &title})
	if err != nil || got != nil {
		t.Fatalf("expected nil, nil; got %v, %v", got, err)
	}
}

func TestMeetingRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewMeetingRepository(newTestDB(t))
	for i := 0; i < 3; i++ {
		if err := repo.CreateWithInsights(ctx, entities.NewMeeting(fmt.Sprintf("m%d", i), "", ""), nil); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	meetings, total, err := repo.List(ctx, 2, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(meetings) != 2 {
		t.Fatalf("unexpected page total=%d len=%d", total, len(meetings))
	}
}

func TestContactRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(newTestDB(t))

	contact := &entities.Contact{Name: "Sarah Chen", Company: "Acme"}
	if err := repo.Create(ctx, contact); err != nil {
		t.Fatalf("create: %v", err)
	}
	if contact.ID == uuid.Nil {
		t.Fatal("expected ID to be assigned")
	}

	topics := []string{"pricing"}
	if err := (entities.ContactPatch{Topics: &topics}).Apply(contact); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := repo.Save(ctx, contact); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.FindByID(ctx, contact.ID)
	if err != nil || got == nil {
		t.Fatalf("find: %v %v", got, err)
	}
	if tl := got.TopicList(); len(tl) != 1 || tl[0] != "pricing" {
		t.Fatalf("unexpected topics %v", tl)
	}

	all, err := repo.List(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("list: %v %v", all, err)
	}

	missing, err := repo.FindByID(ctx, uuid.New())
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil; got %v, %v", missing, err)
	}
}
