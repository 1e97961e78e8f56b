package usecase

import (
	"context"
	"time"

	"main/config"
	"main/model"
	"main/repository"
	"main/utils"
)

// PassService tracks the consumable weekly free passes. Ledger entries for
// past weeks are inert; they are pruned lazily whenever the ledger is read
// so stale flags can never block a future week.
type PassService struct {
	users repository.UserStore
	cfg   config.AppConfig

	Now func() time.Time
}

func NewPassService(users repository.UserStore, cfg config.AppConfig) *PassService {
	return &PassService{
		users: users,
		cfg:   cfg,
		Now:   func() time.Time { return utils.Today(cfg.DayOffset) },
	}
}

// CheckFreePasses reports which passes are consumed for the current week,
// pruning entries from other weeks first and persisting when anything was
// removed.
func (svc *PassService) CheckFreePasses(ctx context.Context, userName string) (*model.FreePassStatus, error) {
	user, err := svc.users.GetUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	week := utils.WeekKey(svc.Now())

	pruned := false
	for _, passType := range model.PassTypes {
		ledger := user.PassLedger(passType)
		for key := range ledger {
			if key != week {
				delete(ledger, key)
				pruned = true
			}
		}
	}
	if pruned {
		if err := svc.users.PutUser(ctx, user); err != nil {
			return nil, err
		}
	}

	return &model.FreePassStatus{
		RestDayUsed:     user.RestDaysUsed[week],
		CheatMealUsed:   user.CheatMealsUsed[week],
		DessertPassUsed: user.DessertPassesUsed[week],
		SodaPassUsed:    user.SodaPassesUsed[week],
		Week:            week,
	}, nil
}

// UpdateFreePass marks the pass consumed for the given week. Idempotent:
// marking an already-consumed pass is harmless. Callers are responsible for
// checking availability first via CheckFreePasses.
func (svc *PassService) UpdateFreePass(ctx context.Context, userName string, passType model.PassType, week string) error {
	user, err := svc.users.GetUser(ctx, userName)
	if err != nil {
		return err
	}

	user.PassLedger(passType)[week] = true
	return svc.users.PutUser(ctx, user)
}
