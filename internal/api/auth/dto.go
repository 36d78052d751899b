package auth

import "time"

type RegisterUserRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=50"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=6"`
	Currency      string  `json:"currency" validate:"omitempty,oneof=USD EUR GBP INR CAD AUD"`
	MonthlyBudget float64 `json:"monthlyBudget" validate:"omitempty,gte=0"`
}

type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUserResponse struct {
	AccessToken      string       `json:"accessToken"`
	ExpiresInMinutes float64      `json:"expiresInMinutes"`
	User             UserResponse `json:"user"`
}

type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Currency      string    `json:"currency"`
	MonthlyBudget float64   `json:"monthlyBudget"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
