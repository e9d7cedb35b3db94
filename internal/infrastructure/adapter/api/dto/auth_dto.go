package dto

import "github.com/paywise/paywise-api/internal/domain/entity"

// RegisterRequest represents the API request for opening an account.
// The phone number may be sent as phoneNumber or phone.
type RegisterRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	UpiID       string `json:"upiId" binding:"required,contains=@,max=255"`
	PhoneNumber string `json:"phoneNumber" binding:"required_without=Phone,max=32"`
	Phone       string `json:"phone" binding:"required_without=PhoneNumber,max=32"`
	Password    string `json:"password" binding:"required,min=4"`
}

// PhoneValue returns whichever phone field was sent, preferring phoneNumber
func (r RegisterRequest) PhoneValue() string {
	if r.PhoneNumber != "" {
		return r.PhoneNumber
	}
	return r.Phone
}

// LoginRequest represents the API request for signing in.
// identifier is a UPI ID or a phone number; upiId is accepted in its place.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required_without=UpiID"`
	UpiID      string `json:"upiId" binding:"required_without=Identifier"`
	Password   string `json:"password" binding:"required"`
}

// LoginIdentifier returns the account identifier, preferring identifier over upiId
func (r LoginRequest) LoginIdentifier() string {
	if r.Identifier != "" {
		return r.Identifier
	}
	return r.UpiID
}

// UserProfile is the public part of a user returned after authentication
type UserProfile struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	UpiID       string `json:"upiId"`
	PhoneNumber string `json:"phoneNumber"`
}

// AuthResponse represents the API response of register and login
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
	Msg   string      `json:"msg"`
}

// CurrentUserResponse is the signed-in user's account without credentials
type CurrentUserResponse struct {
	UserProfile
	Balance    string             `json:"balance"`
	Categories []CategoryResponse `json:"categories"`
}

// NewCurrentUserResponse maps a user to its account view
func NewCurrentUserResponse(user *entity.User) CurrentUserResponse {
	return CurrentUserResponse{
		UserProfile: NewUserProfile(user),
		Balance:     user.GetBalance(),
		Categories:  NewCategoryList(user.Categories),
	}
}

// NewUserProfile maps a user to its public profile
func NewUserProfile(user *entity.User) UserProfile {
	return UserProfile{
		UserID:      user.ID,
		Name:        user.Name,
		UpiID:       user.UpiID,
		PhoneNumber: user.Phone,
	}
}
