package config

import "main/model"

// ActivityInfo describes one of the five base activities for display.
type ActivityInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Activities is the static display table for the five base activities.
var Activities = []ActivityInfo{
	{ID: model.ActivityExercise, Name: "45 minutos de ejercicio", Icon: "🏃‍♂️"},
	{ID: model.ActivityHealthyFood, Name: "Comer saludable", Icon: "🥗"},
	{ID: model.ActivityReading, Name: "10 páginas de libro o 15 min de podcast", Icon: "📚"},
	{ID: model.ActivityWater, Name: "Tomar 1L de agua", Icon: "💧"},
	{ID: model.ActivityNoAlcohol, Name: "No alcohol ni Coca Zero", Icon: "🚫"},
}

// DailyChallenges is the rotating bonus table, indexed by weekday (0 = Sunday).
var DailyChallenges = []model.DailyChallenge{
	{ID: "steps12k", Text: "🏃‍♂️ Hacer 12,000 pasos", Day: 0},
	{ID: "swimming", Text: "🏊‍♂️ Hacer natación por 30 minutos", Day: 1},
	{ID: "yoga", Text: "🧘‍♀️ 20 minutos de yoga o estiramientos", Day: 2},
	{ID: "cycling", Text: "🚴‍♂️ 30 minutos de bicicleta", Day: 3},
	{ID: "strength", Text: "🏋️‍♀️ Entrenamiento de fuerza", Day: 4},
	{ID: "sport", Text: "⚽ Jugar algún deporte", Day: 5},
	{ID: "veggies", Text: "🥒 Comer solo vegetales en una comida", Day: 6},
}

// FreePassInfo describes one consumable weekly pass.
type FreePassInfo struct {
	Type            model.PassType `json:"type"`
	Name            string         `json:"name"`
	Icon            string         `json:"icon"`
	AffectsActivity string         `json:"affects_activity"`
	PerWeek         int            `json:"per_week"`
}

// FreePasses is the static pass table. The affected activity is forced to
// completed when the pass is invoked for the day.
var FreePasses = []FreePassInfo{
	{Type: model.PassRestDay, Name: "Día de descanso", Icon: "😴", AffectsActivity: model.ActivityExercise, PerWeek: 1},
	{Type: model.PassCheatMeal, Name: "Comida chatarra permitida", Icon: "🍔", AffectsActivity: model.ActivityHealthyFood, PerWeek: 1},
	{Type: model.PassDessertPass, Name: "Postre permitido", Icon: "🍰", AffectsActivity: model.ActivityHealthyFood, PerWeek: 1},
	{Type: model.PassSodaPass, Name: "Gaseosa permitida", Icon: "🥤", AffectsActivity: model.ActivityNoAlcohol, PerWeek: 1},
}
