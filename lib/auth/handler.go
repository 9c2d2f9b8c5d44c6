package authhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talent-engine-backend/db"
	usersstore "talent-engine-backend/lib/users/store"
	authutils "talent-engine-backend/lib/utils/auth-utils"
	authapimodels "talent-engine-backend/models/api/auth"
)

type Provider interface {
	Login(email, password string) (resp authapimodels.JWTResponse, err error)
	RefreshToken(refreshToken string) (resp authapimodels.JWTAccessResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore usersstore.Provider
}

func (i impl) Login(email, password string) (resp authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.userStore.GetByEmail(email)
	if err != nil {
		logger.WithError(err).Error("user lookup failed")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.JWTResponse{}, errors.New("invalid credentials")
	}
	if user.Password != authutils.GetMD5Hash(password) {
		return authapimodels.JWTResponse{}, errors.New("invalid credentials")
	}
	access, err := authutils.GetToken(user.ID, user.GetFullName(), user.TenantID, user.Role.IsTenantAdmin(), user.Role)
	if err != nil {
		logger.WithError(err).Error("access token issue failed")
		return authapimodels.JWTResponse{}, err
	}
	refresh, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		logger.WithError(err).Error("refresh token issue failed")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Access:  access,
		Refresh: refresh,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new access token.
// The refresh token itself is not rotated.
func (i impl) RefreshToken(refreshToken string) (resp authapimodels.JWTAccessResponse, err error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.JWTAccessResponse{}, err
	}
	rec, err := i.userStore.GetAnyByID(userID)
	if err != nil {
		return authapimodels.JWTAccessResponse{}, err
	}
	if rec == nil || !rec.IsActive {
		return authapimodels.JWTAccessResponse{}, errors.New("user is not active")
	}
	access, err := authutils.GetToken(rec.ID, rec.GetFullName(), rec.TenantID, rec.Role.IsTenantAdmin(), rec.Role)
	if err != nil {
		return authapimodels.JWTAccessResponse{}, err
	}
	return authapimodels.JWTAccessResponse{
		Access: access,
	}, nil
}
