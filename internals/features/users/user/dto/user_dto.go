package dto

import (
	lifecycle "planner_backend/internals/features/users/lifecycle/service"
	uModel "planner_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// UpdateMeRequest: PATCH /users/@me. Password tidak bisa diganti lewat sini (hanya admin CLI).
type UpdateMeRequest struct {
	Username *string `json:"username" form:"username" validate:"omitempty,min=1,max=50"`
}

func (r *UpdateMeRequest) Empty() bool {
	return r.Username == nil
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse = uModel.UserView

func ToUserResponse(u *uModel.UserModel) UserResponse {
	return uModel.PublicView(u)
}

// LifecycleResponse: hasil reset / delete akun
type LifecycleResponse struct {
	UserID  uint              `json:"user_id"`
	Removed *lifecycle.Report `json:"removed"`
}
