package model

type LeaderboardEntry struct {
	Name          string `json:"name"`
	Points        int    `json:"points"`
	TotalDays     int    `json:"total_days"`
	CurrentStreak int    `json:"current_streak"`
	LastActive    string `json:"last_active,omitempty"`
}

// DayLogRef pairs a date with its log, nil when the day was never reported.
type DayLogRef struct {
	Date string    `json:"date"`
	Log  *DailyLog `json:"log"`
}

type UserStatsReport struct {
	UserName       string      `json:"user_name"`
	TotalPoints    int         `json:"total_points"`
	TotalDays      int         `json:"total_days"`
	PerfectDays    int         `json:"perfect_days"`
	CurrentStreak  int         `json:"current_streak"`
	LongestStreak  int         `json:"longest_streak"`
	CompletionRate int         `json:"completion_rate"`
	Last7Days      []DayLogRef `json:"last_7_days"`
}

// GroupStats is the dashboard header: challenge day number, how many
// participants reported today, and who currently leads.
type GroupStats struct {
	ChallengeDay   int    `json:"challenge_day"`
	TodayCompleted int    `json:"today_completed"`
	TotalUsers     int    `json:"total_users"`
	TotalPoints    int    `json:"total_points"`
	LeaderName     string `json:"leader_name"`
	LeaderPoints   int    `json:"leader_points"`
	PrizeAmount    int    `json:"prize_amount"`
}

// PenalizeSummary aggregates one penalizer run. Per-user failures are
// collected instead of aborting the batch.
type PenalizeSummary struct {
	Date            string   `json:"date"`
	TotalUsers      int      `json:"total_users"`
	AlreadyReported int      `json:"already_reported"`
	Penalized       int      `json:"penalized"`
	Failed          []string `json:"failed,omitempty"`
}

// DailyChallenge is one entry of the rotating bonus table, indexed by weekday.
type DailyChallenge struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Day  int    `json:"day"` // 0 = Sunday, matching the rotation table
}
