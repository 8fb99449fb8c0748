package service

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "studylog/internal/platform/errors"
)

const MinPasswordLength = 6

// AccountService holds the credential rules; persistence stays with the
// preferences module.
type AccountService struct {
	cost int
}

func NewAccountService(cost int) *AccountService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &AccountService{cost: cost}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AccountService) ValidateSignup(email, password, confirm string) error {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", apperrors.ErrInvalidInput)
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrInvalidInput, MinPasswordLength)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", apperrors.ErrInvalidInput)
	}
	return nil
}

func (s *AccountService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify checks the typed credentials against what signup stored.
func (s *AccountService) Verify(storedEmail, storedHash, email, password string) error {
	if storedEmail == "" || storedHash == "" {
		return apperrors.ErrNoAccount
	}
	if NormalizeEmail(email) != NormalizeEmail(storedEmail) {
		return apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err != nil {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}
