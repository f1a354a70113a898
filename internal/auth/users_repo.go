package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/tracing"
	"github.com/JustRob12/HomeWorkoutGenerator/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const userColumns = `id, username, email, password_hash, avatar,
	COALESCE(google_id, ''), COALESCE(facebook_id, ''), created_at`

type UsersRepo struct {
	db *pgxpool.Pool
}

func NewUsersRepo(db *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

func (r *UsersRepo) Add(ctx context.Context, user *User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO users
				(username, email, password_hash, avatar, google_id, facebook_id, created_at)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)
			RETURNING id;`,
		user.Username, user.Email, user.PasswordHash, user.Avatar, user.GoogleID, user.FacebookID, user.CreatedAt,
	)

	var id int
	if err := row.Scan(&id); err != nil {
		return nil, mapUniqueViolation(err)
	}

	user.ID = id
	return user, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getById")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", id))

	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1;`, email)
}

func (r *UsersRepo) GetByProviderID(ctx context.Context, provider Provider, providerID string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByProviderId")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.provider", string(provider)))

	var column string
	switch provider {
	case ProviderGoogle:
		column = "google_id"
	case ProviderFacebook:
		column = "facebook_id"
	default:
		return nil, provider.Validate()
	}

	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE `+column+` = $1;`, providerID)
}

func (r *UsersRepo) getOne(ctx context.Context, query string, arg any) (*User, error) {
	var u User
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Avatar,
		&u.GoogleID, &u.FacebookID, &u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update stores the avatar and oauth ids of an existing user.
func (r *UsersRepo) Update(ctx context.Context, user *User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", user.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users
			SET avatar = $1, google_id = NULLIF($2, ''), facebook_id = NULLIF($3, '')
			WHERE id = $4;`,
		user.Avatar, user.GoogleID, user.FacebookID, user.ID,
	)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UsersRepo) UpdateAvatar(ctx context.Context, userID int, avatar string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateAvatar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(ctx, `UPDATE users SET avatar = $1 WHERE id = $2;`, avatar, userID)
	if err != nil {
		return fmt.Errorf("update avatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func mapUniqueViolation(err error) error {
	if !pkg.IsUniqueViolationError(err) {
		return fmt.Errorf("store user: %w", err)
	}
	switch constraint := pkg.ConstraintName(err); constraint {
	case "users_username_key":
		return ErrUsernameTaken
	case "users_email_key":
		return ErrEmailTaken
	default:
		return fmt.Errorf("store user, constraint %s: %w", constraint, err)
	}
}
