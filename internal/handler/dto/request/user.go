package request

import (
	"gearshare/internal/usecase"
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty"`
	Email *string `json:"email" binding:"omitempty,email"`
}

func (r UpdateUserRequest) ToParams() usecase.UpdateUserParams {
	return usecase.UpdateUserParams{
		Name:  r.Name,
		Email: r.Email,
	}
}
