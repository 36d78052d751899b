package authService

import (
	"ExpenseTracker/internal/api/auth"
	authRepository "ExpenseTracker/internal/api/auth/repository"
	"ExpenseTracker/internal/entity"
	"ExpenseTracker/pkg/bcrypt"
	"ExpenseTracker/pkg/utils"
	"context"
	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	RegisterUser(c context.Context, req auth.RegisterUserRequest) (auth.UserResponse, error)
	Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	GetProfile(c context.Context, userID string) (auth.UserResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,
		bcryptUtils:    bcryptUtils,
		utils:          utils,
	}
}

func MakeUserData(user entity.User) map[string]interface{} {
	return map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	}
}
