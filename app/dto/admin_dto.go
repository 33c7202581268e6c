package dto

import "time"

// AdminDTO is the public view of an admin account
type AdminDTO struct {
	ID          uint       `json:"id" example:"1"`
	UUID        string     `json:"uuid" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Username    string     `json:"username" example:"registrar"`
	IsActive    bool       `json:"is_active" example:"true"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// AdminCaptchaInitResponse carries a rotate captcha challenge
type AdminCaptchaInitResponse struct {
	ChallengeID       string `json:"challenge_id"`
	MasterImageBase64 string `json:"master_image_base64"`
	ThumbImageBase64  string `json:"thumb_image_base64"`
}

// AdminLoginRequest completes a captcha challenge and presents credentials
type AdminLoginRequest struct {
	ChallengeID string  `json:"challenge_id" validate:"required"`
	Username    string  `json:"username" validate:"required,min=3,max=64"`
	Password    string  `json:"password" validate:"required,min=8,max=72"`
	UserAngle   float64 `json:"user_angle" validate:"gte=0,lte=360"`
}

// AdminLoginResponse is returned on a successful admin login
type AdminLoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type" example:"Bearer"`
	ExpiresIn   int      `json:"expires_in" example:"3600"`
	Admin       AdminDTO `json:"admin"`
}
