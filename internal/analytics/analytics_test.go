package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sptr(v string) *string { return &v }

func makeEvent(kind string, ts time.Time, visitorID string) Event {
	return Event{
		EventType: kind,
		Timestamp: ts,
		VisitorID: visitorID,
	}
}

func TestBuildStats_Counts(t *testing.T) {
	now := time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC)

	events := []Event{
		makeEvent(EventVisit, now, "v1"),
		makeEvent(EventVisit, now, "v2"),
		makeEvent(EventInstall, now, "v3"),
		makeEvent(EventCatchLogged, now, "v4"),
		makeEvent(EventPageView, now, "v5"),
	}
	events[4].Page = sptr("dashboard")

	resp := BuildStats(events, now)

	assert.Equal(t, 2, resp.TotalVisits)
	assert.Equal(t, 5, resp.UniqueVisitors)
	assert.Equal(t, 1, resp.TotalInstalls)
	assert.Equal(t, 1, resp.CatchesLogged)
	assert.Equal(t, map[string]int{"dashboard": 1}, resp.PageViews)
}

func TestBuildStats_DeviceBreakdownUnknownBucket(t *testing.T) {
	now := time.Now().UTC()

	events := []Event{
		makeEvent(EventVisit, now, "v1"),
		makeEvent(EventVisit, now, "v2"),
	}
	events[0].DeviceType = sptr("mobile")

	resp := BuildStats(events, now)

	assert.Equal(t, 1, resp.DeviceBreakdown["mobile"])
	assert.Equal(t, 1, resp.DeviceBreakdown["unknown"])
}

func TestBuildStats_DailyVisitsThirtyDaysOldestFirst(t *testing.T) {
	today := time.Date(2025, time.March, 31, 23, 0, 0, 0, time.UTC)

	events := []Event{
		makeEvent(EventVisit, today, "v1"),
		makeEvent(EventVisit, today.AddDate(0, 0, -29), "v2"),
		// Outside the window: must not appear anywhere.
		makeEvent(EventVisit, today.AddDate(0, 0, -30), "v3"),
		// Non-visit events never count toward the daily series.
		makeEvent(EventInstall, today, "v4"),
	}

	resp := BuildStats(events, today)

	require.Len(t, resp.DailyVisits, 30)
	assert.Equal(t, "2025-03-02", resp.DailyVisits[0].Date)
	assert.Equal(t, "2025-03-31", resp.DailyVisits[29].Date)
	assert.Equal(t, 1, resp.DailyVisits[0].Visits)
	assert.Equal(t, 1, resp.DailyVisits[29].Visits)

	total := 0
	for _, d := range resp.DailyVisits {
		total += d.Visits
	}
	assert.Equal(t, 2, total)
}

func TestBuildStats_VisitorIDsCountEventsNotPeople(t *testing.T) {
	now := time.Now().UTC()

	// Every tracked event carries a fresh visitor id, so ten visits by
	// one person still count as ten unique visitors.
	events := make([]Event, 0, 10)
	for i := 0; i < 10; i++ {
		events = append(events, makeEvent(EventVisit, now, fmt.Sprintf("v%d", i)))
	}

	resp := BuildStats(events, now)
	assert.Equal(t, 10, resp.UniqueVisitors)
}

func TestBuildStats_Empty(t *testing.T) {
	resp := BuildStats(nil, time.Now().UTC())

	assert.Equal(t, 0, resp.TotalVisits)
	assert.Equal(t, 0, resp.UniqueVisitors)
	assert.Empty(t, resp.PageViews)
	assert.Empty(t, resp.DeviceBreakdown)
	require.Len(t, resp.DailyVisits, 30)
}
