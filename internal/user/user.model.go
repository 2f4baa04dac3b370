package user

import "time"

type User struct {
	ID             string    `json:"id" bson:"id"`
	Email          string    `json:"email" bson:"email"`
	HashedPassword string    `json:"-" bson:"hashed_password"`
	Profile        Profile   `json:"profile" bson:"profile"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	IsActive       bool      `json:"is_active" bson:"is_active"`
}

// Profile is the freeform angler profile. Every field is optional;
// pointer types keep present/absent explicit so a PUT replaces the whole
// subdocument with exactly what the client sent.
type Profile struct {
	// Personal info
	Name         *string `json:"name" bson:"name"`
	Surname      *string `json:"surname" bson:"surname"`
	Age          *int    `json:"age" bson:"age"`
	YearsAngling *int    `json:"years_angling" bson:"years_angling"`
	Bio          *string `json:"bio" bson:"bio"`

	// Gear setup
	Rods             *string `json:"rods" bson:"rods"`
	Reels            *string `json:"reels" bson:"reels"`
	Alarms           *string `json:"alarms" bson:"alarms"`
	Bobbins          *string `json:"bobbins" bson:"bobbins"`
	RodPodBanksticks *string `json:"rod_pod_banksticks" bson:"rod_pod_banksticks"`
	BivvyBrolly      *string `json:"bivvy_brolly" bson:"bivvy_brolly"`
	Baitboat         *string `json:"baitboat" bson:"baitboat"`
	NetAndMat        *string `json:"net_and_mat" bson:"net_and_mat"`

	// Line setup
	Mainline               *string `json:"mainline" bson:"mainline"`
	MainlineBreakingStrain *string `json:"mainline_breaking_strain" bson:"mainline_breaking_strain"`
	Hooklink               *string `json:"hooklink" bson:"hooklink"`
	HooklinkBreakingStrain *string `json:"hooklink_breaking_strain" bson:"hooklink_breaking_strain"`

	// Preferences
	FavoriteBrands      *string `json:"favorite_brands" bson:"favorite_brands"`
	FavoriteBaitCompany *string `json:"favorite_bait_company" bson:"favorite_bait_company"`
	FavoriteRigs        *string `json:"favorite_rigs" bson:"favorite_rigs"`
	FavoriteBaits       *string `json:"favorite_baits" bson:"favorite_baits"`

	// Fishing locations
	HomeWaters     *string  `json:"home_waters" bson:"home_waters"`
	FavoriteVenues *string  `json:"favorite_venues" bson:"favorite_venues"`
	PBWeight       *float64 `json:"pb_weight" bson:"pb_weight"`
	PBWeightUnit   *string  `json:"pb_weight_unit" bson:"pb_weight_unit"`
}

// ApplyDefaults fills fields that carry a default when the client omits
// them. Currently only the personal-best weight unit.
func (p *Profile) ApplyDefaults() {
	if p.PBWeightUnit == nil {
		unit := "kg"
		p.PBWeightUnit = &unit
	}
}

// Public is the view of a user returned over the API. It never carries
// the credential hash.
type Public struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Profile   Profile   `json:"profile"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Public() *Public {
	return &Public{
		ID:        u.ID,
		Email:     u.Email,
		Profile:   u.Profile,
		CreatedAt: u.CreatedAt,
	}
}
