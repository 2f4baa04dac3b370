package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carplogAPI/internal/catch"
	"carplogAPI/internal/stats"
)

// statsFetchCap bounds how many catches one aggregation pulls into
// memory. The reduction is in-process, not streamed.
const statsFetchCap = 10000

type StatsService struct {
	catches     *mongo.Collection
	userService *UserService
}

func NewStatsService(db *mongo.Database, userService *UserService) *StatsService {
	return &StatsService{
		catches:     db.Collection("catches"),
		userService: userService,
	}
}

// Monthly fetches the user's catches for the year once and partitions
// them into twelve calendar-month buckets.
func (s *StatsService) Monthly(ctx context.Context, userID string, year int) ([]stats.MonthlyStats, error) {
	if err := s.userService.Exists(ctx, userID); err != nil {
		return nil, err
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	catches, err := s.fetch(ctx, bson.M{
		"user_id":   userID,
		"caught_at": bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		return nil, err
	}

	return stats.BuildMonthly(catches, year), nil
}

// Yearly buckets the user's whole catch history by capture year,
// newest first. Years without catches are never synthesized.
func (s *StatsService) Yearly(ctx context.Context, userID string) ([]stats.YearlyStats, error) {
	if err := s.userService.Exists(ctx, userID); err != nil {
		return nil, err
	}

	catches, err := s.fetch(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}

	return stats.BuildYearly(catches), nil
}

func (s *StatsService) fetch(ctx context.Context, filter bson.M) ([]catch.Catch, error) {
	cursor, err := s.catches.Find(ctx, filter, options.Find().SetLimit(statsFetchCap))
	if err != nil {
		return nil, fmt.Errorf("failed to query catches: %w", err)
	}
	defer cursor.Close(ctx)

	catches := []catch.Catch{}
	if err := cursor.All(ctx, &catches); err != nil {
		return nil, fmt.Errorf("failed to decode catches: %w", err)
	}
	return catches, nil
}
