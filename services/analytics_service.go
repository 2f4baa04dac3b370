package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carplogAPI/internal/analytics"
)

// analyticsFetchCap bounds the whole-collection read behind the stats
// endpoint.
const analyticsFetchCap = 100000

type AnalyticsService struct {
	events *mongo.Collection
}

func NewAnalyticsService(db *mongo.Database) *AnalyticsService {
	return &AnalyticsService{
		events: db.Collection("analytics"),
	}
}

// Track appends the event with a server timestamp and a freshly
// generated visitor id. The id is never reused, so unique-visitor
// counts measure events, not people.
func (s *AnalyticsService) Track(ctx context.Context, req *analytics.TrackRequest) error {
	event := &analytics.Event{
		EventType:  req.EventType,
		Page:       req.Page,
		DeviceType: req.DeviceType,
		UserAgent:  req.UserAgent,
		Timestamp:  time.Now().UTC(),
		VisitorID:  uuid.NewString(),
	}

	if _, err := s.events.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to insert analytics event: %w", err)
	}
	return nil
}

// Stats fetches every event and reduces the counts in memory.
func (s *AnalyticsService) Stats(ctx context.Context) (*analytics.StatsResponse, error) {
	cursor, err := s.events.Find(ctx, bson.M{}, options.Find().SetLimit(analyticsFetchCap))
	if err != nil {
		return nil, fmt.Errorf("failed to query analytics events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []analytics.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode analytics events: %w", err)
	}

	return analytics.BuildStats(events, time.Now().UTC()), nil
}
