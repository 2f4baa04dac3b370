package analytics

import "time"

// Event kinds accepted by the tracking endpoint.
const (
	EventVisit       = "visit"
	EventInstall     = "install"
	EventPageView    = "page_view"
	EventCatchLogged = "catch_logged"
)

// Event is an anonymous usage record. The visitor id is generated fresh
// for every event, so it identifies events rather than people.
type Event struct {
	EventType  string    `json:"event_type" bson:"event_type"`
	Page       *string   `json:"page" bson:"page"`
	DeviceType *string   `json:"device_type" bson:"device_type"`
	UserAgent  *string   `json:"user_agent" bson:"user_agent"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
	VisitorID  string    `json:"visitor_id" bson:"visitor_id"`
}

type TrackRequest struct {
	EventType  string  `json:"event_type" validate:"required,oneof=visit install page_view catch_logged"`
	Page       *string `json:"page"`
	DeviceType *string `json:"device_type"`
	UserAgent  *string `json:"user_agent"`
}

type DailyVisits struct {
	Date   string `json:"date"`
	Visits int    `json:"visits"`
}

type StatsResponse struct {
	TotalVisits     int            `json:"total_visits"`
	UniqueVisitors  int            `json:"unique_visitors"`
	TotalInstalls   int            `json:"total_installs"`
	CatchesLogged   int            `json:"catches_logged"`
	PageViews       map[string]int `json:"page_views"`
	DeviceBreakdown map[string]int `json:"device_breakdown"`
	DailyVisits     []DailyVisits  `json:"daily_visits"`
}

// BuildStats reduces the full event set into the aggregate counts. The
// daily series covers the 30 UTC calendar days ending at today, oldest
// first, matched by exact day-string equality.
func BuildStats(events []Event, today time.Time) *StatsResponse {
	resp := &StatsResponse{
		PageViews:       make(map[string]int),
		DeviceBreakdown: make(map[string]int),
	}

	visitors := make(map[string]struct{})
	visitsByDay := make(map[string]int)

	for i := range events {
		e := &events[i]
		switch e.EventType {
		case EventVisit:
			resp.TotalVisits++
			visitsByDay[e.Timestamp.UTC().Format("2006-01-02")]++
		case EventInstall:
			resp.TotalInstalls++
		case EventCatchLogged:
			resp.CatchesLogged++
		case EventPageView:
			if e.Page != nil && *e.Page != "" {
				resp.PageViews[*e.Page]++
			}
		}

		if e.VisitorID != "" {
			visitors[e.VisitorID] = struct{}{}
		}

		device := "unknown"
		if e.DeviceType != nil && *e.DeviceType != "" {
			device = *e.DeviceType
		}
		resp.DeviceBreakdown[device]++
	}
	resp.UniqueVisitors = len(visitors)

	day := today.UTC()
	resp.DailyVisits = make([]DailyVisits, 0, 30)
	for i := 29; i >= 0; i-- {
		d := day.AddDate(0, 0, -i).Format("2006-01-02")
		resp.DailyVisits = append(resp.DailyVisits, DailyVisits{
			Date:   d,
			Visits: visitsByDay[d],
		})
	}

	return resp
}
