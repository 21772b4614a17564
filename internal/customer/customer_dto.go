package customer

type SignupRequest struct {
	Username    string `json:"username" binding:"required" validate:"required,min=4,max=20"`
	Password    string `json:"password" binding:"required" validate:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,min=10,max=15"`
	Address     string `json:"address"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type CustomerResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}
