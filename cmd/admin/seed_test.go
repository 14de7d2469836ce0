package main

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	migrate "github.com/rubenv/sql-migrate"

	"github.com/johnquangdev/insight-stream/internal/adapter/repository"
	"github.com/johnquangdev/insight-stream/internal/infrastructure/database"
)

func TestSeed_IsIdempotent(t *testing.T) {
	db, err := database.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatal(err)
	}
	defer database.CloseDB(db)
	if _, err := database.Migrate(db, "sqlite", migrate.Up); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	meetings := repository.NewMeetingRepository(db)
	contacts := repository.NewContactRepository(db)

	res, err := seed(ctx, meetings, contacts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Meetings != 2 || res.Contacts != 4 {
		t.Fatalf("unexpected first seed %+v", res)
	}

	res, err = seed(ctx, meetings, contacts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Meetings != 0 || res.Contacts != 0 {
		t.Fatalf("second seed should insert nothing, got %+v", res)
	}

	list, _, err := meetings.List(ctx, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	var q4 bool
	for _, m := range list {
		if m.Title == "Q4 Strategic Review & Roadmap" && strings.HasPrefix(m.TranscriptText, "David Kim: Alright everyone") {
			q4 = true
			if _, ok := m.Report()["Next_Steps"]; !ok {
				t.Fatalf("report not stored: %s", m.SummaryText)
			}
		}
	}
	if !q4 {
		t.Fatal("Q4 review meeting missing")
	}

	all, _ := contacts.List(ctx)
	for _, c := range all {
		if c.Name != "Sarah Chen" {
			continue
		}
		if events := c.TimelineEvents(); len(events) != 2 || events[0].ID != 1 || events[1].ID != 2 {
			t.Fatalf("timeline not stored: %s", c.Timeline)
		}
	}
}
