package service

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/mdouchement/checklist/internal/checkerror"
	"github.com/mdouchement/checklist/internal/database"
	"github.com/mdouchement/checklist/internal/model"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type (
	// A Render is an arbitrary payload serializable in JSON by the API.
	Render interface{}

	// M is an arbitrary map.
	M map[string]interface{}

	// A UserService handles the registration and authentication flows.
	UserService interface {
		Register(params RegisterParams) (Render, error)
		Login(params LoginParams) (Render, error)
	}

	// RegisterParams are used to register a user.
	RegisterParams struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}

	// LoginParams are used to login a user.
	LoginParams struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	userService struct {
		db         database.Client
		signingKey []byte
	}
)

// NewUser returns a new UserService.
func NewUser(db database.Client, signingKey []byte) UserService {
	return &userService{
		db:         db,
		signingKey: signingKey,
	}
}

// Register creates a new user with a hashed password.
// The raw password is neither stored nor logged.
func (s *userService) Register(params RegisterParams) (Render, error) {
	user := &model.User{
		Email:    params.Email,
		Username: params.Username,
	}

	// Crypt password
	password, err := bcrypt.GenerateFromPassword([]byte(params.Password), model.PasswordCost)
	if err != nil {
		return nil, errors.Wrap(err, "could not store user password safe")
	}
	user.Password = string(password)

	// Persist the model
	if err := s.db.Save(user); err != nil {
		if s.db.IsAlreadyExists(err) {
			return nil, checkerror.Conflict("User already exists")
		}
		return nil, errors.Wrap(err, "could not persist user")
	}

	return M{
		"message": "success",
		"user":    user,
	}, nil
}

// Login verifies the given credentials and issues a signed token
// with the user's identity as claims.
func (s *userService) Login(params LoginParams) (Render, error) {
	// Retrieve user
	user, err := s.db.FindUserByUsername(params.Username)
	if err != nil {
		if s.db.IsNotFound(err) {
			return nil, checkerror.NotFound("User not found")
		}
		return nil, errors.Wrap(err, "could not get user")
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(params.Password)); err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return nil, checkerror.Unauthorized("Invalid password")
		}
		return nil, errors.Wrap(err, "could not validate password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return nil, errors.Wrap(err, "could not sign token")
	}

	return M{
		"message": "success",
		"token":   signed,
	}, nil
}
