package common_test

import (
	"strings"
	"testing"

	"github.com/missionforge/backend/internal/common"
	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/internal/repository"
	"github.com/missionforge/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func TestGlobalRoleVerifier(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	verifier := common.NewGlobalRoleVerifier(repository.NewUserRepository())

	// A plain user does not hold the admin role.
	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	err := verifier.Verify(userCtx, entity.GlobalAdminRoles...)
	require.Error(t, err)

	// An allow-listed wallet address passes regardless of the stored role.
	adminCtx := testutil.MockContextWithUserID(ctx, testutil.AdminUser.ID)
	require.NoError(t, verifier.Verify(adminCtx, entity.GlobalAdminRoles...))

	// A user with a matching stored role passes too.
	require.NoError(t, verifier.Verify(userCtx, entity.RoleUser))

	// No session means no admin.
	err = verifier.Verify(ctx, entity.GlobalAdminRoles...)
	require.Error(t, err)
}

func TestGlobalRoleVerifier_addressCaseInsensitive(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	userRepo := repository.NewUserRepository()

	lowered := &entity.User{
		Base:    entity.Base{ID: "lowered-admin"},
		Address: strings.ToLower(testutil.AdminAddress),
		Name:    "lowered-admin",
		Role:    entity.RoleUser,
	}
	require.NoError(t, userRepo.Create(ctx, lowered))

	verifier := common.NewGlobalRoleVerifier(userRepo)
	adminCtx := testutil.MockContextWithUserID(ctx, lowered.ID)
	require.NoError(t, verifier.Verify(adminCtx, entity.GlobalAdminRoles...))
}

func TestMissionRoleVerifier(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	verifier := common.NewMissionRoleVerifier(repository.NewUserRepository())

	// The creator manages their own mission.
	creatorCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	require.NoError(t, verifier.Verify(creatorCtx, testutil.Mission1))

	// An admin manages any mission.
	adminCtx := testutil.MockContextWithUserID(ctx, testutil.AdminUser.ID)
	require.NoError(t, verifier.Verify(adminCtx, testutil.Mission1))

	// Anyone else does not.
	otherCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	require.Error(t, verifier.Verify(otherCtx, testutil.Mission1))

	// Unauthenticated requests are rejected outright.
	require.Error(t, verifier.Verify(ctx, testutil.Mission1))
}

func TestIsPrivilegedCreator(t *testing.T) {
	ctx := testutil.MockContext()

	require.True(t, common.IsPrivilegedCreator(ctx, testutil.PrivilegedAddress))
	require.True(t, common.IsPrivilegedCreator(ctx, strings.ToLower(testutil.PrivilegedAddress)))
	require.False(t, common.IsPrivilegedCreator(ctx, testutil.User1.Address))
	require.False(t, common.IsPrivilegedCreator(ctx, ""))
}
