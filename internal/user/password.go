package user

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bootcamp-api/pkg/cerror"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", cerror.ValidationError(fmt.Sprintf("password must be at most %d bytes", MaxPasswordBytes))
		}

		return "", cerror.DependencyError("error occurred while generate hash from password").
			WithFields(zap.Error(err))
	}

	return string(hashedPassword), nil
}

func MatchPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
