// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification, and
// account lookup.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/dmitrijs2005/lifetracker/internal/apierror"
	"github.com/dmitrijs2005/lifetracker/internal/common"
	"github.com/dmitrijs2005/lifetracker/internal/dbx"
	"github.com/dmitrijs2005/lifetracker/internal/server/config"
	"github.com/dmitrijs2005/lifetracker/internal/server/models"
	"github.com/dmitrijs2005/lifetracker/internal/server/repositories/repomanager"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// Permissive on purpose: an @ and a dot with non-space segments.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// uniqueViolation is the PostgreSQL error code for unique-constraint failures.
const uniqueViolation = "23505"

// RegisterRequest carries the fields required to create an account.
type RegisterRequest struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// UserService provides account-related operations:
// - Register: create users
// - Login: verify credentials
// - FetchUserByEmail: resolve an identity claim to a stored record
type UserService struct {
	db               *sql.DB
	repomanager      repomanager.RepositoryManager
	bcryptWorkFactor int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:               db,
		repomanager:      m,
		bcryptWorkFactor: cfg.BcryptWorkFactor,
	}
}

// Register validates the supplied fields, rejects duplicate email/username
// (naming the colliding field), hashes the password, and inserts the record.
// The duplicate pre-check and the insert run in one transaction; a racing
// registration that slips past the pre-check is still caught by the unique
// constraints and reported the same way. The returned record never contains
// the password hash.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if req.Email == "" || req.Username == "" || req.FirstName == "" || req.LastName == "" || req.Password == "" {
		return nil, apierror.BadRequest("Missing required fields")
	}

	if !emailPattern.MatchString(req.Email) {
		return nil, apierror.BadRequest(fmt.Sprintf("Invalid email: %s", req.Email))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptWorkFactor)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hash),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		existing, err := repo.GetUserByEmailOrUsername(ctx, req.Email, req.Username)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking duplicates: %w", err)
		}
		if existing != nil {
			return duplicateFieldError(existing, req.Email)
		}

		if _, err := repo.Create(ctx, user); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, translateUniqueViolation(err, req.Email, req.Username)
	}

	return user.Sanitize(), nil
}

// Login verifies the supplied credentials. A missing field, an unknown email,
// and a wrong password all fail with 401; the latter two share one constant
// message so callers cannot tell which was wrong.
func (s *UserService) Login(ctx context.Context, email string, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apierror.Unauthorized("Missing credentials")
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, apierror.Unauthorized("Invalid credentials")
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apierror.Unauthorized("Invalid credentials")
	}

	return user.Sanitize(), nil
}

// FetchUserByEmail returns the full stored record, including the password
// hash. Internal callers only; the record must be sanitized before leaving
// the API boundary.
func (s *UserService) FetchUserByEmail(ctx context.Context, email string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, apierror.NotFound(fmt.Sprintf("No account exists with email: %s", email))
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// duplicateFieldError names the field the existing record collides on.
func duplicateFieldError(existing *models.User, email string) error {
	if existing.Email == email {
		return apierror.BadRequest(fmt.Sprintf("Duplicate email: %s", email))
	}
	return apierror.BadRequest(fmt.Sprintf("Duplicate username: %s", existing.Username))
}

// translateUniqueViolation maps a constraint violation raised by a racing
// insert onto the same BadRequest the pre-check produces.
func translateUniqueViolation(err error, email string, username string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if pgErr.ConstraintName == "users_email_key" {
			return apierror.BadRequest(fmt.Sprintf("Duplicate email: %s", email))
		}
		return apierror.BadRequest(fmt.Sprintf("Duplicate username: %s", username))
	}
	return err
}
