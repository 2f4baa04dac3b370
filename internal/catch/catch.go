package catch

import "time"

// Catch is a single logged fish-capture event owned by one user.
type Catch struct {
	ID          string    `json:"id" bson:"id"`
	UserID      string    `json:"user_id" bson:"user_id"`
	FishName    *string   `json:"fish_name" bson:"fish_name"`
	Weight      *float64  `json:"weight" bson:"weight"`
	WeightUnit  string    `json:"weight_unit" bson:"weight_unit"`
	Length      *float64  `json:"length" bson:"length"`
	Venue       *string   `json:"venue" bson:"venue"`
	PegNumber   *string   `json:"peg_number" bson:"peg_number"`
	WrapsCount  *int      `json:"wraps_count" bson:"wraps_count"`
	BaitUsed    *string   `json:"bait_used" bson:"bait_used"`
	PhotoBase64 *string   `json:"photo_base64" bson:"photo_base64"`
	CaughtAt    time.Time `json:"caught_at" bson:"caught_at"`
	Notes       *string   `json:"notes" bson:"notes"`
}

// Weighted reports whether the catch is eligible for weight aggregates:
// a present, strictly positive weight.
func (c *Catch) Weighted() bool {
	return c.Weight != nil && *c.Weight > 0
}

type CreateRequest struct {
	FishName    *string    `json:"fish_name"`
	Weight      *float64   `json:"weight"`
	WeightUnit  string     `json:"weight_unit"`
	Length      *float64   `json:"length"`
	Venue       *string    `json:"venue"`
	PegNumber   *string    `json:"peg_number"`
	WrapsCount  *int       `json:"wraps_count"`
	BaitUsed    *string    `json:"bait_used"`
	PhotoBase64 *string    `json:"photo_base64"`
	CaughtAt    *time.Time `json:"caught_at"`
	Notes       *string    `json:"notes"`
}
