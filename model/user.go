package model

// PassType identifies one of the consumable weekly free passes.
type PassType string

const (
	PassRestDay     PassType = "restDay"
	PassCheatMeal   PassType = "cheatMeal"
	PassDessertPass PassType = "dessertPass"
	PassSodaPass    PassType = "sodaPass"
)

var PassTypes = []PassType{PassRestDay, PassCheatMeal, PassDessertPass, PassSodaPass}

// AffectedActivity maps each pass type to the activity it force-completes.
var AffectedActivity = map[PassType]string{
	PassRestDay:     ActivityExercise,
	PassCheatMeal:   ActivityHealthyFood,
	PassDessertPass: ActivityHealthyFood,
	PassSodaPass:    ActivityNoAlcohol,
}

type UserStats struct {
	TotalDays     int `bson:"total_days" json:"total_days"`
	PerfectDays   int `bson:"perfect_days" json:"perfect_days"`
	CurrentStreak int `bson:"current_streak" json:"current_streak"`
	LongestStreak int `bson:"longest_streak" json:"longest_streak"`
}

// User is the aggregate record for one participant. Pass-usage ledgers map
// week keys to true; entries for weeks other than the current one are inert
// and pruned lazily on read.
type User struct {
	Name              string          `bson:"_id" json:"name"`
	Points            int             `bson:"points" json:"points"`
	LastActive        string          `bson:"last_active,omitempty" json:"last_active,omitempty"`
	LastPenaltyDate   string          `bson:"last_penalty_date,omitempty" json:"last_penalty_date,omitempty"`
	Stats             UserStats       `bson:"stats" json:"stats"`
	RestDaysUsed      map[string]bool `bson:"rest_days_used" json:"rest_days_used"`
	CheatMealsUsed    map[string]bool `bson:"cheat_meals_used" json:"cheat_meals_used"`
	DessertPassesUsed map[string]bool `bson:"dessert_passes_used" json:"dessert_passes_used"`
	SodaPassesUsed    map[string]bool `bson:"soda_passes_used" json:"soda_passes_used"`
}

// NewUser returns a zero-valued record with initialized ledgers. Stores must
// hand this out instead of "not found" for any recognized user name.
func NewUser(name string) *User {
	return &User{
		Name:              name,
		RestDaysUsed:      map[string]bool{},
		CheatMealsUsed:    map[string]bool{},
		DessertPassesUsed: map[string]bool{},
		SodaPassesUsed:    map[string]bool{},
	}
}

// PassLedger returns the usage ledger for the given pass type, creating the
// map on first use so callers can write into it directly.
func (u *User) PassLedger(t PassType) map[string]bool {
	switch t {
	case PassRestDay:
		if u.RestDaysUsed == nil {
			u.RestDaysUsed = map[string]bool{}
		}
		return u.RestDaysUsed
	case PassCheatMeal:
		if u.CheatMealsUsed == nil {
			u.CheatMealsUsed = map[string]bool{}
		}
		return u.CheatMealsUsed
	case PassDessertPass:
		if u.DessertPassesUsed == nil {
			u.DessertPassesUsed = map[string]bool{}
		}
		return u.DessertPassesUsed
	case PassSodaPass:
		if u.SodaPassesUsed == nil {
			u.SodaPassesUsed = map[string]bool{}
		}
		return u.SodaPassesUsed
	}
	return nil
}
