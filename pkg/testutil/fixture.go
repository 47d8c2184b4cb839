package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/internal/repository"
)

const (
	AdminAddress      = "0x00000000000000000000000000000000000Ad019"
	PrivilegedAddress = "0x0000000000000000000000000000000000001337"
)

var (
	User1 = &entity.User{
		Base:    entity.Base{ID: "user1"},
		Address: "0x1111111111111111111111111111111111111111",
		Name:    "user1",
		Role:    entity.RoleUser,
	}

	User2 = &entity.User{
		Base:    entity.Base{ID: "user2"},
		Address: "0x2222222222222222222222222222222222222222",
		Name:    "user2",
		Role:    entity.RoleUser,
	}

	AdminUser = &entity.User{
		Base:    entity.Base{ID: "admin"},
		Address: AdminAddress,
		Name:    "admin",
		Role:    entity.RoleUser,
	}

	PrivilegedUser = &entity.User{
		Base:    entity.Base{ID: "privileged"},
		Address: PrivilegedAddress,
		Name:    "privileged",
		Role:    entity.RoleUser,
	}

	Token1 = &entity.AllowedToken{
		Base:     entity.Base{ID: "token1"},
		Address:  "0x3333333333333333333333333333333333333333",
		Symbol:   "USDT",
		Name:     "Tether",
		Decimals: 6,
		Chain:    "ethereum",
		Active:   true,
	}

	// Mission1 is a running token-backed mission created by user1.
	Mission1 = &entity.Mission{
		Base:      entity.Base{ID: "mission1"},
		CreatedBy: User1.ID,
		Title:     "User1 Mission1",
		Summary:   "Do the task",
		Category:  "social",

		TokenID:     sql.NullString{Valid: true, String: Token1.ID},
		TokenAmount: 1000,
		TotalPoints: 1000,

		StartTime: time.Now().Add(-time.Hour),
		EndTime:   time.Now().Add(time.Hour),
		Status:    entity.MissionActive,

		Distribution: entity.DistributionLinear,
		MaxWinners:   3,
	}

	// Mission2 is a finished mission waiting for finalization.
	Mission2 = &entity.Mission{
		Base:      entity.Base{ID: "mission2"},
		CreatedBy: User1.ID,
		Title:     "User1 Mission2",
		Category:  "development",

		TokenID:     sql.NullString{Valid: true, String: Token1.ID},
		TokenAmount: 1000,
		TotalPoints: 1000,

		StartTime: time.Now().Add(-2 * time.Hour),
		EndTime:   time.Now().Add(-time.Hour),
		Status:    entity.MissionCompleted,

		Distribution: entity.DistributionLinear,
		MaxWinners:   3,
	}
)

func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertTokens(ctx)
	insertMissions(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	for _, user := range []*entity.User{User1, User2, AdminUser, PrivilegedUser} {
		if err := userRepo.Create(ctx, user); err != nil {
			panic(err)
		}
	}
}

func insertTokens(ctx context.Context) {
	tokenRepo := repository.NewAllowedTokenRepository()
	if err := tokenRepo.Create(ctx, Token1); err != nil {
		panic(err)
	}
}

func insertMissions(ctx context.Context) {
	missionRepo := repository.NewMissionRepository()

	for _, mission := range []*entity.Mission{Mission1, Mission2} {
		if err := missionRepo.Create(ctx, mission); err != nil {
			panic(err)
		}
	}
}
