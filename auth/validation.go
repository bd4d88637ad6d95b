package auth

import (
	"regexp"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// validateRegistration collects every violated registration rule. An empty
// result means the input may be persisted.
func validateRegistration(in RegisterInput) []string {
	var violations []string

	if len(in.Username) < 3 {
		violations = append(violations, "Username must be at least 3 characters long.")
	}

	if len(in.Password) < 6 {
		violations = append(violations, "Password must be at least 6 characters long.")
	} else if !hasLetterAndDigit(in.Password) {
		violations = append(violations, "Password must contain at least one letter and one number.")
	}

	if !emailPattern.MatchString(in.Email) {
		violations = append(violations, "Invalid email address.")
	}

	if in.Role != "" && in.Role != "admin" && in.Role != "user" {
		violations = append(violations, "Role must be either 'admin' or 'user'.")
	}

	return violations
}

// validateLogin checks only that both credentials are present; everything
// else is the primary store's and the hasher's business.
func validateLogin(username, password string) []string {
	var violations []string
	if username == "" {
		violations = append(violations, "Username is required.")
	}
	if password == "" {
		violations = append(violations, "Password is required.")
	}
	return violations
}

func hasLetterAndDigit(s string) bool {
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
