package domain

import (
	"bytes"
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/accounts"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/internal/model"
	"github.com/missionforge/backend/internal/repository"
	"github.com/missionforge/backend/pkg/crypto"
	"github.com/missionforge/backend/pkg/errorx"
	"github.com/missionforge/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type WalletAuthDomain interface {
	Login(ctx context.Context, req *model.WalletLoginRequest) (*model.WalletLoginResponse, error)
	Verify(ctx context.Context, req *model.WalletVerifyRequest) (*model.WalletVerifyResponse, error)
}

type walletAuthDomain struct {
	userRepo repository.UserRepository
}

func NewWalletAuthDomain(userRepo repository.UserRepository) *walletAuthDomain {
	return &walletAuthDomain{userRepo: userRepo}
}

func (d *walletAuthDomain) Login(
	ctx context.Context, req *model.WalletLoginRequest,
) (*model.WalletLoginResponse, error) {
	if !ethcommon.IsHexAddress(req.Address) {
		return nil, errorx.New(errorx.BadRequest, "Invalid wallet address")
	}

	nonce, err := crypto.GenerateRandomString()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate random nonce: %v", err)
		return nil, errorx.Unknown
	}

	session, err := xcontext.SessionStore(ctx).Get(
		xcontext.HTTPRequest(ctx), xcontext.Configs(ctx).Session.Name)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get the session: %v", err)
		return nil, errorx.Unknown
	}

	session.Values["address"] = req.Address
	session.Values["nonce"] = nonce

	err = session.Save(xcontext.HTTPRequest(ctx), xcontext.HTTPWriter(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save the session: %v", err)
		return nil, errorx.Unknown
	}

	return &model.WalletLoginResponse{Address: req.Address, Nonce: nonce}, nil
}

func (d *walletAuthDomain) Verify(
	ctx context.Context, req *model.WalletVerifyRequest,
) (*model.WalletVerifyResponse, error) {
	session, err := xcontext.SessionStore(ctx).Get(
		xcontext.HTTPRequest(ctx), xcontext.Configs(ctx).Session.Name)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get the session: %v", err)
		return nil, errorx.Unknown
	}

	address, ok := session.Values["address"].(string)
	if !ok {
		return nil, errorx.New(errorx.Unauthenticated, "No login session found")
	}

	nonce, ok := session.Values["nonce"].(string)
	if !ok {
		return nil, errorx.New(errorx.Unauthenticated, "No login session found")
	}

	// The session is single-use regardless of the verification result.
	session.Options.MaxAge = -1
	if err := session.Save(xcontext.HTTPRequest(ctx), xcontext.HTTPWriter(ctx)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot expire the session: %v", err)
		return nil, errorx.Unknown
	}

	hash := accounts.TextHash([]byte(nonce))
	signature, err := hexutil.Decode(req.Signature)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot decode signature: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid signature")
	}

	if len(signature) <= ethcrypto.RecoveryIDOffset {
		return nil, errorx.New(errorx.BadRequest, "Invalid signature")
	}

	if signature[ethcrypto.RecoveryIDOffset] == 27 || signature[ethcrypto.RecoveryIDOffset] == 28 {
		signature[ethcrypto.RecoveryIDOffset] -= 27 // Transform yellow paper V from 27/28 to 0/1
	}

	recovered, err := ethcrypto.SigToPub(hash, signature)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot recover signature to address: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid signature")
	}

	recoveredAddr := ethcrypto.PubkeyToAddress(*recovered)
	if !bytes.Equal(recoveredAddr.Bytes(), ethcommon.HexToAddress(address).Bytes()) {
		return nil, errorx.New(errorx.BadRequest, "Mismatched address")
	}

	user, err := d.userRepo.GetByAddress(ctx, address)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get user by address: %v", err)
			return nil, errorx.Unknown
		}

		// First login of this wallet registers the user.
		user = &entity.User{
			Base:    entity.Base{ID: uuid.NewString()},
			Address: address,
			Name:    address,
			Role:    entity.RoleUser,
		}

		if err := d.userRepo.Create(ctx, user); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
			return nil, errorx.Unknown
		}
	}

	token, err := xcontext.TokenEngine(ctx).Generate(user.ID, model.AccessToken{
		ID:      user.ID,
		Name:    user.Name,
		Address: user.Address,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.WalletVerifyResponse{User: convertUser(user), AccessToken: token}, nil
}
