package common

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/internal/repository"
	"github.com/missionforge/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

// GlobalRoleVerifier resolves the admin scope. A user is an admin if its
// stored role is in the required set, or its wallet address is in the
// configured allow-list. The allow-list comes from injected configuration,
// never from ambient process state.
type GlobalRoleVerifier struct {
	userRepo repository.UserRepository
}

func NewGlobalRoleVerifier(userRepo repository.UserRepository) *GlobalRoleVerifier {
	return &GlobalRoleVerifier{userRepo: userRepo}
}

func (verifier *GlobalRoleVerifier) Verify(ctx context.Context, requiredRoles ...entity.GlobalRole) error {
	userID := xcontext.RequestUserID(ctx)
	u, err := verifier.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user is not valid")
	}

	if slices.Contains(requiredRoles, u.Role) {
		return nil
	}

	if containsAddress(xcontext.Configs(ctx).Auth.AdminAddresses, u.Address) {
		return nil
	}

	return errors.New("user role does not have permission")
}

// MissionRoleVerifier resolves the creator scope on a single mission. Admins
// pass unconditionally.
type MissionRoleVerifier struct {
	globalRoleVerifier *GlobalRoleVerifier
}

func NewMissionRoleVerifier(userRepo repository.UserRepository) *MissionRoleVerifier {
	return &MissionRoleVerifier{globalRoleVerifier: NewGlobalRoleVerifier(userRepo)}
}

func (verifier *MissionRoleVerifier) Verify(ctx context.Context, mission *entity.Mission) error {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return errors.New("no authenticated user")
	}

	if mission.CreatedBy == userID {
		return nil
	}

	if err := verifier.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		return errors.New("only the mission creator or an admin has permission")
	}

	return nil
}

// IsPrivilegedCreator reports whether the address may create a points-only
// mission with no token backing.
func IsPrivilegedCreator(ctx context.Context, address string) bool {
	return containsAddress(xcontext.Configs(ctx).Mission.PrivilegedCreators, address)
}

func containsAddress(list []string, address string) bool {
	for _, a := range list {
		if strings.EqualFold(a, address) {
			return true
		}
	}

	return false
}
