package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Lucassfers/My-task-back-end/internal/constants"
)

const passwordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

var ErrWeakPassword = errors.New("password does not meet the requirements")

// WeakPasswordError lists every rule a rejected password breaks.
type WeakPasswordError struct {
	Rules []string
}

func (e *WeakPasswordError) Error() string {
	return fmt.Sprintf("%s: %s", ErrWeakPassword, strings.Join(e.Rules, "; "))
}

func (e *WeakPasswordError) Is(target error) bool {
	return target == ErrWeakPassword
}

// ValidatePassword returns the broken password rules, nil when there are none.
func ValidatePassword(password string) []string {
	var rules []string
	if len(password) < constants.MinPasswordLength {
		rules = append(rules, fmt.Sprintf("password must be at least %d characters", constants.MinPasswordLength))
	}

	var upper, lower, digits, symbols int
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower++
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune(passwordSymbols, r):
			symbols++
		}
	}

	if upper == 0 {
		rules = append(rules, "password must contain an uppercase letter")
	}
	if lower == 0 {
		rules = append(rules, "password must contain a lowercase letter")
	}
	if digits == 0 {
		rules = append(rules, "password must contain a digit")
	}
	if symbols == 0 {
		rules = append(rules, "password must contain a symbol")
	}
	return rules
}

func checkPassword(password string) error {
	if rules := ValidatePassword(password); len(rules) > 0 {
		return &WeakPasswordError{Rules: rules}
	}
	return nil
}
