package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

var ErrInvalidIDToken = errors.New("invalid google id token")

// GoogleVerifier checks Google Sign-In ID tokens issued for our client id.
type GoogleVerifier struct {
	validator *idtoken.Validator
	clientID  string
}

func NewGoogleVerifier(ctx context.Context, clientID string, httpClient *http.Client) (*GoogleVerifier, error) {
	if clientID == "" {
		return nil, errors.New("google client id not set")
	}

	validator, err := idtoken.NewValidator(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create id token validator: %w", err)
	}

	return &GoogleVerifier{
		validator: validator,
		clientID:  clientID,
	}, nil
}

// Verify validates the credential and returns the profile it carries.
func (v *GoogleVerifier) Verify(ctx context.Context, credential string) (OAuthProfile, error) {
	payload, err := v.validator.Validate(ctx, credential, v.clientID)
	if err != nil {
		return OAuthProfile{}, fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}
	return profileFromClaims(payload.Subject, payload.Claims), nil
}

func profileFromClaims(subject string, claims map[string]any) OAuthProfile {
	claim := func(name string) string {
		s, _ := claims[name].(string)
		return s
	}
	return OAuthProfile{
		Provider:   ProviderGoogle,
		ProviderID: subject,
		Email:      claim("email"),
		Name:       claim("name"),
		Avatar:     claim("picture"),
	}
}
