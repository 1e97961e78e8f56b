package model

// WeekDay describes one Monday-to-Sunday slot of the current week.
type WeekDay struct {
	Date      string `json:"date"`
	DayName   string `json:"day_name"`
	Completed bool   `json:"completed"`
	Perfect   bool   `json:"perfect"`
	IsToday   bool   `json:"is_today"`
	IsFuture  bool   `json:"is_future"`
	Failed    bool   `json:"failed"`
}

// WeeklyProgress is the Monday-anchored view of the current week.
// A week is complete only when all seven days are perfect and none failed.
type WeeklyProgress struct {
	Week          string    `json:"week"`
	Days          []WeekDay `json:"days"`
	CompletedDays int       `json:"completed_days"`
	PerfectDays   int       `json:"perfect_days"`
	TotalDays     int       `json:"total_days"`
	HasFailedDay  bool      `json:"has_failed_day"`
	IsComplete    bool      `json:"is_complete"`
	IsFailed      bool      `json:"is_failed"`
}

type StreakResult struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

// FreePassStatus reports which passes are already consumed for the week.
type FreePassStatus struct {
	RestDayUsed     bool   `json:"rest_day_used"`
	CheatMealUsed   bool   `json:"cheat_meal_used"`
	DessertPassUsed bool   `json:"dessert_pass_used"`
	SodaPassUsed    bool   `json:"soda_pass_used"`
	Week            string `json:"week"`
}
