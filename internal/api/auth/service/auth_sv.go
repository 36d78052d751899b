package authService

import (
	"ExpenseTracker/internal/api/auth"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"
	jwtPkg "ExpenseTracker/pkg/jwt"
	"context"
	"errors"
	"github.com/sirupsen/logrus"
	"strings"
	"time"
)

func (s *authService) RegisterUser(c context.Context, req auth.RegisterUserRequest) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	currency := req.Currency
	if currency == "" {
		currency = string(entity.CurrencyUSD)
	}
	if !entity.IsValidCurrency(currency) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"currency":   req.Currency,
		}).Warn("Invalid currency on register")
		return auth.UserResponse{}, auth.ErrInvalidCurrency
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.UserResponse{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return auth.UserResponse{}, err
	}

	now := time.Now()
	user := entity.User{
		ID:            ULID,
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Password:      hashedPassword,
		Currency:      currency,
		MonthlyBudget: req.MonthlyBudget,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			return auth.UserResponse{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.UserResponse{}, err
	}

	return makeUserResponse(user), nil
}

func (s *authService) Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to get user by email")
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginUserResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Password comparison failed")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	userData := MakeUserData(user)

	token, expired, err := jwtPkg.Sign(userData, time.Hour*1)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	res := auth.LoginUserResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
		User:             makeUserResponse(user),
	}

	return res, nil
}

func (s *authService) GetProfile(c context.Context, userID string) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(c, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("User not found")
			return auth.UserResponse{}, auth.ErrUserNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return auth.UserResponse{}, err
	}

	return makeUserResponse(user), nil
}

func makeUserResponse(user entity.User) auth.UserResponse {
	return auth.UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Currency:      user.Currency,
		MonthlyBudget: user.MonthlyBudget,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
