package model

import "time"

// The five base activities of the challenge. ActivityOrder is the fixed
// iteration order used when scoring; it only affects the breakdown lines.
const (
	ActivityExercise    = "exercise"
	ActivityHealthyFood = "healthyFood"
	ActivityReading     = "reading"
	ActivityWater       = "water"
	ActivityNoAlcohol   = "noAlcohol"
)

var ActivityOrder = []string{
	ActivityExercise,
	ActivityHealthyFood,
	ActivityReading,
	ActivityWater,
	ActivityNoAlcohol,
}

// Activities maps each activity id to whether it was completed that day.
// A well-formed set contains exactly the five known ids.
type Activities map[string]bool

// Valid reports whether the set contains exactly the five known activity ids.
func (a Activities) Valid() bool {
	if len(a) != len(ActivityOrder) {
		return false
	}
	for _, id := range ActivityOrder {
		if _, ok := a[id]; !ok {
			return false
		}
	}
	return true
}

// Perfect reports whether every activity was completed.
func (a Activities) Perfect() bool {
	if len(a) == 0 {
		return false
	}
	for _, id := range ActivityOrder {
		if !a[id] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (a Activities) Clone() Activities {
	out := make(Activities, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// DailyLog is one user's record for one civil day. Logs are keyed by
// (user, date) and upsertable: resubmitting the same day overwrites the
// previous entry, with user aggregates adjusted by the delta.
type DailyLog struct {
	UserName      string     `bson:"user_name" json:"user_name"`
	Date          string     `bson:"date" json:"date"` // YYYY-MM-DD, Costa Rica civil day
	Activities    Activities `bson:"activities" json:"activities"`
	DailyBonus    bool       `bson:"daily_bonus" json:"daily_bonus"`
	WeeklyBonus   bool       `bson:"weekly_bonus" json:"weekly_bonus"`
	RestDay       bool       `bson:"rest_day" json:"rest_day"`
	CheatMeal     bool       `bson:"cheat_meal" json:"cheat_meal"`
	DessertPass   bool       `bson:"dessert_pass" json:"dessert_pass"`
	SodaPass      bool       `bson:"soda_pass" json:"soda_pass"`
	LatePenalty   bool       `bson:"late_penalty,omitempty" json:"late_penalty,omitempty"`
	PointsEarned  int        `bson:"points_earned" json:"points_earned"`
	Breakdown     []string   `bson:"breakdown" json:"breakdown"`
	IsAutoPenalty bool       `bson:"is_auto_penalty,omitempty" json:"is_auto_penalty,omitempty"`
	Timestamp     time.Time  `bson:"timestamp" json:"timestamp"`
}

// Perfect reports whether the log's day is perfect (all five activities done).
func (l *DailyLog) Perfect() bool {
	return l != nil && l.Activities.Perfect()
}

// PassUsage maps each pass type to whether this log used it.
func (l *DailyLog) PassUsage() map[PassType]bool {
	return map[PassType]bool{
		PassRestDay:     l.RestDay,
		PassCheatMeal:   l.CheatMeal,
		PassDessertPass: l.DessertPass,
		PassSodaPass:    l.SodaPass,
	}
}
