package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, req RefreshTokenRequest) error
	Me(ctx context.Context) (UserResponse, error)

	// Google OAuth flow
	LoginWithGoogle(ctx context.Context, userAgent string) (redirectURL string, state string, err error)
	OAuthCallbackGoogle(ctx context.Context, code string, sessionReq SessionTrackingRequest) (TokenResponse, error)
}
