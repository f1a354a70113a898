package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/tracing"
	"github.com/JustRob12/HomeWorkoutGenerator/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	oauthUsernameSuffixLen  = 4
	oauthPasswordLen        = 16
	oauthUsernameMaxRetries = 3
)

type usersRepo interface {
	Add(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByProviderID(ctx context.Context, provider Provider, providerID string) (*User, error)
	Update(ctx context.Context, user *User) error
}

type sessionStarter interface {
	Login(ctx context.Context, userID int, username string, createdAt time.Time) (*Session, error)
}

// OAuthProfile is what a social sign-in provider tells us about the user.
type OAuthProfile struct {
	Provider   Provider
	ProviderID string
	Email      string
	Name       string
	Avatar     string
}

// Identity registers and authenticates users, handing out sessions.
type Identity struct {
	users    usersRepo
	sessions sessionStarter

	hashCost    int
	randString  func(s int) (string, error)
	now         func() time.Time
	userUpdated func(userID int)
}

func NewIdentity(users usersRepo, sessions sessionStarter) *Identity {
	return &Identity{
		users:       users,
		sessions:    sessions,
		hashCost:    pkg.DefaultPasswordHashCost,
		randString:  pkg.GenerateRandomString,
		now:         time.Now,
		userUpdated: func(int) {},
	}
}

// OnUserUpdated registers fn to be called after an existing user row changes, e.g. to drop cached profiles.
func (i *Identity) OnUserUpdated(fn func(userID int)) {
	if fn != nil {
		i.userUpdated = fn
	}
}

func (i *Identity) Register(ctx context.Context, username, email, password string) (_ *User, _ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "identity.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if username == "" || email == "" || password == "" {
		return nil, nil, fmt.Errorf("%w: username, email and password are required", ErrInvalidUserData)
	}

	if _, err := i.users.GetByEmail(ctx, email); err == nil {
		return nil, nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, nil, err
	}

	passwordHash, err := pkg.HashPasswordWithCost(password, i.hashCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := i.users.Add(ctx, &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    i.now(),
	})
	if err != nil {
		return nil, nil, err
	}

	session, err := i.sessions.Login(ctx, user.ID, user.Username, i.now())
	if err != nil {
		return nil, nil, err
	}

	log.Debugf("identity: user registered: %d [%s]", user.ID, user.Username)
	return user, session, nil
}

func (i *Identity) Login(ctx context.Context, email, password string) (_ *User, _ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "identity.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := i.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrUserNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := i.sessions.Login(ctx, user.ID, user.Username, i.now())
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}

// LinkOrCreateOAuth finds the user by provider id, then by email (linking the provider to it),
// and creates a new user if neither matches.
func (i *Identity) LinkOrCreateOAuth(ctx context.Context, profile OAuthProfile) (_ *User, _ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "identity.oauth")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.provider", string(profile.Provider)))

	if err := profile.Provider.Validate(); err != nil {
		return nil, nil, err
	}
	profile.ProviderID = strings.TrimSpace(profile.ProviderID)
	profile.Email = normalizeEmail(profile.Email)
	if profile.ProviderID == "" {
		return nil, nil, fmt.Errorf("%w: missing %s id", ErrInvalidUserData, profile.Provider)
	}

	user, err := i.findOrLink(ctx, profile)
	if errors.Is(err, ErrUserNotFound) {
		user, err = i.createOAuthUser(ctx, profile)
	}
	if err != nil {
		return nil, nil, err
	}

	session, err := i.sessions.Login(ctx, user.ID, user.Username, i.now())
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}

func (i *Identity) findOrLink(ctx context.Context, profile OAuthProfile) (*User, error) {
	user, err := i.users.GetByProviderID(ctx, profile.Provider, profile.ProviderID)
	if err == nil || !errors.Is(err, ErrUserNotFound) {
		return user, err
	}

	if profile.Email == "" {
		return nil, ErrUserNotFound
	}

	user, err = i.users.GetByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}

	user.setProviderID(profile.Provider, profile.ProviderID)
	if user.Avatar == "" && profile.Avatar != "" {
		user.Avatar = profile.Avatar
	}
	if err := i.users.Update(ctx, user); err != nil {
		return nil, err
	}
	i.userUpdated(user.ID)

	log.Debugf("identity: linked %s account to user %d", profile.Provider, user.ID)
	return user, nil
}

func (i *Identity) createOAuthUser(ctx context.Context, profile OAuthProfile) (*User, error) {
	if profile.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidUserData)
	}

	password, err := i.randString(oauthPasswordLen)
	if err != nil {
		return nil, fmt.Errorf("generate password: %w", err)
	}
	passwordHash, err := pkg.HashPasswordWithCost(password, i.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	base := usernameBase(profile.Name, profile.Email)
	for attempt := 0; ; attempt++ {
		suffix, err := i.randString(oauthUsernameSuffixLen)
		if err != nil {
			return nil, fmt.Errorf("generate username: %w", err)
		}

		user := &User{
			Username:     base + strings.ToLower(suffix),
			Email:        profile.Email,
			PasswordHash: passwordHash,
			Avatar:       profile.Avatar,
			CreatedAt:    i.now(),
		}
		user.setProviderID(profile.Provider, profile.ProviderID)

		added, err := i.users.Add(ctx, user)
		if errors.Is(err, ErrUsernameTaken) && attempt < oauthUsernameMaxRetries {
			continue
		}
		if err != nil {
			return nil, err
		}

		log.Debugf("identity: created user %d [%s] from %s", added.ID, added.Username, profile.Provider)
		return added, nil
	}
}

// usernameBase is the display name lowercased with whitespace removed,
// falling back to the local part of the email.
func usernameBase(name, email string) string {
	base := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
	if base == "" {
		base, _, _ = strings.Cut(email, "@")
	}
	return base
}
