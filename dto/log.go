package dto

import (
	"main/model"
	"main/usecase"
)

// SubmitLogRequest is the wire shape of a daily report. The activities rule
// enforces the exact five-key set before the request reaches the service.
type SubmitLogRequest struct {
	UserName    string           `json:"user_name" binding:"required"`
	Date        string           `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Activities  model.Activities `json:"activities" binding:"required,activities"`
	DailyBonus  bool             `json:"daily_bonus"`
	RestDay     bool             `json:"rest_day"`
	CheatMeal   bool             `json:"cheat_meal"`
	DessertPass bool             `json:"dessert_pass"`
	SodaPass    bool             `json:"soda_pass"`
	LatePenalty bool             `json:"late_penalty"`
}

func (r *SubmitLogRequest) ToInput() *usecase.SubmitInput {
	return &usecase.SubmitInput{
		UserName:    r.UserName,
		Date:        r.Date,
		Activities:  r.Activities,
		DailyBonus:  r.DailyBonus,
		RestDay:     r.RestDay,
		CheatMeal:   r.CheatMeal,
		DessertPass: r.DessertPass,
		SodaPass:    r.SodaPass,
		LatePenalty: r.LatePenalty,
	}
}

// LogResponse is the stored log echoed back after submission.
type LogResponse struct {
	UserName      string           `json:"user_name"`
	Date          string           `json:"date"`
	Activities    model.Activities `json:"activities"`
	DailyBonus    bool             `json:"daily_bonus"`
	WeeklyBonus   bool             `json:"weekly_bonus"`
	RestDay       bool             `json:"rest_day"`
	CheatMeal     bool             `json:"cheat_meal"`
	DessertPass   bool             `json:"dessert_pass"`
	SodaPass      bool             `json:"soda_pass"`
	LatePenalty   bool             `json:"late_penalty,omitempty"`
	PointsEarned  int              `json:"points_earned"`
	Breakdown     []string         `json:"breakdown"`
	IsAutoPenalty bool             `json:"is_auto_penalty,omitempty"`
}

// Convert model.DailyLog to LogResponse
func ToLogResponse(l *model.DailyLog) LogResponse {
	return LogResponse{
		UserName:      l.UserName,
		Date:          l.Date,
		Activities:    l.Activities,
		DailyBonus:    l.DailyBonus,
		WeeklyBonus:   l.WeeklyBonus,
		RestDay:       l.RestDay,
		CheatMeal:     l.CheatMeal,
		DessertPass:   l.DessertPass,
		SodaPass:      l.SodaPass,
		LatePenalty:   l.LatePenalty,
		PointsEarned:  l.PointsEarned,
		Breakdown:     l.Breakdown,
		IsAutoPenalty: l.IsAutoPenalty,
	}
}
