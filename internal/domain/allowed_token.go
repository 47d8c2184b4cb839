package domain

import (
	"context"
	"errors"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/missionforge/backend/internal/common"
	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/internal/model"
	"github.com/missionforge/backend/internal/repository"
	"github.com/missionforge/backend/pkg/errorx"
	"github.com/missionforge/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AllowedTokenDomain interface {
	Create(ctx context.Context, req *model.CreateAllowedTokenRequest) (*model.CreateAllowedTokenResponse, error)
	GetList(ctx context.Context, req *model.GetListAllowedTokenRequest) (*model.GetListAllowedTokenResponse, error)
	Delete(ctx context.Context, req *model.DeleteAllowedTokenRequest) (*model.DeleteAllowedTokenResponse, error)
}

type allowedTokenDomain struct {
	allowedTokenRepo repository.AllowedTokenRepository
	roleVerifier     *common.GlobalRoleVerifier
}

func NewAllowedTokenDomain(
	allowedTokenRepo repository.AllowedTokenRepository,
	userRepo repository.UserRepository,
) *allowedTokenDomain {
	return &allowedTokenDomain{
		allowedTokenRepo: allowedTokenRepo,
		roleVerifier:     common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *allowedTokenDomain) Create(
	ctx context.Context, req *model.CreateAllowedTokenRequest,
) (*model.CreateAllowedTokenResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when creating allowed token: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if !ethcommon.IsHexAddress(req.Address) {
		return nil, errorx.New(errorx.BadRequest, "Invalid token contract address")
	}

	if req.Symbol == "" {
		return nil, errorx.New(errorx.BadRequest, "Symbol is required")
	}

	if req.Decimals < 0 {
		return nil, errorx.New(errorx.BadRequest, "Decimals cannot be negative")
	}

	token := &entity.AllowedToken{
		Base:      entity.Base{ID: uuid.NewString()},
		Address:   req.Address,
		Symbol:    req.Symbol,
		Name:      req.Name,
		Decimals:  req.Decimals,
		Chain:     req.Chain,
		Active:    true,
		CreatedBy: xcontext.RequestUserID(ctx),
	}

	if err := d.allowedTokenRepo.Create(ctx, token); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "This token is already allowed")
		}

		xcontext.Logger(ctx).Errorf("Cannot create allowed token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateAllowedTokenResponse{ID: token.ID}, nil
}

func (d *allowedTokenDomain) GetList(
	ctx context.Context, req *model.GetListAllowedTokenRequest,
) (*model.GetListAllowedTokenResponse, error) {
	tokens, err := d.allowedTokenRepo.GetActiveList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get allowed tokens: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.AllowedToken{}
	for i := range tokens {
		result = append(result, convertAllowedToken(&tokens[i]))
	}

	return &model.GetListAllowedTokenResponse{Tokens: result}, nil
}

func (d *allowedTokenDomain) Delete(
	ctx context.Context, req *model.DeleteAllowedTokenRequest,
) (*model.DeleteAllowedTokenResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when deleting allowed token: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if _, err := d.allowedTokenRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found token")
		}

		xcontext.Logger(ctx).Errorf("Cannot get allowed token: %v", err)
		return nil, errorx.Unknown
	}

	// Existing missions keep their token reference, the token just stops
	// being offered for new missions.
	if err := d.allowedTokenRepo.Deactivate(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot deactivate allowed token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteAllowedTokenResponse{}, nil
}
