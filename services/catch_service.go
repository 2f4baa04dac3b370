package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carplogAPI/internal/catch"
)

const defaultListLimit = 100

type CatchService struct {
	catches     *mongo.Collection
	userService *UserService
}

func NewCatchService(db *mongo.Database, userService *UserService) *CatchService {
	return &CatchService{
		catches:     db.Collection("catches"),
		userService: userService,
	}
}

// Create logs a new catch for the user. The server assigns the id and,
// when the caller omits it, the capture timestamp.
func (s *CatchService) Create(ctx context.Context, userID string, req *catch.CreateRequest) (*catch.Catch, error) {
	if err := s.userService.Exists(ctx, userID); err != nil {
		return nil, err
	}

	caughtAt := time.Now().UTC()
	if req.CaughtAt != nil {
		caughtAt = req.CaughtAt.UTC()
	}

	weightUnit := req.WeightUnit
	if weightUnit == "" {
		weightUnit = "kg"
	}

	c := &catch.Catch{
		ID:          uuid.NewString(),
		UserID:      userID,
		FishName:    req.FishName,
		Weight:      req.Weight,
		WeightUnit:  weightUnit,
		Length:      req.Length,
		Venue:       req.Venue,
		PegNumber:   req.PegNumber,
		WrapsCount:  req.WrapsCount,
		BaitUsed:    req.BaitUsed,
		PhotoBase64: req.PhotoBase64,
		CaughtAt:    caughtAt,
		Notes:       req.Notes,
	}

	if _, err := s.catches.InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to insert catch: %w", err)
	}

	return c, nil
}

// List returns the user's catches, newest capture first. A year filter
// covers the calendar year; year plus month covers that calendar month,
// with December rolling into January of the next year. A month without
// a year is ignored. The limit truncates the result, not the scan.
func (s *CatchService) List(ctx context.Context, userID string, year, month *int, limit int64) ([]catch.Catch, error) {
	if err := s.userService.Exists(ctx, userID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultListLimit
	}

	filter := bson.M{"user_id": userID}
	if year != nil {
		var start, end time.Time
		if month != nil {
			start = time.Date(*year, time.Month(*month), 1, 0, 0, 0, 0, time.UTC)
			end = start.AddDate(0, 1, 0)
		} else {
			start = time.Date(*year, time.January, 1, 0, 0, 0, 0, time.UTC)
			end = start.AddDate(1, 0, 0)
		}
		filter["caught_at"] = bson.M{"$gte": start, "$lt": end}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "caught_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.catches.Find(ctx, filter, opts)
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

// Delete removes a catch owned by the user. A nonexistent id and an id
// owned by someone else both come back as ErrNotFound.
func (s *CatchService) Delete(ctx context.Context, userID, catchID string) error {
	result, err := s.catches.DeleteOne(ctx, bson.M{"id": catchID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete catch: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
