package client

import "strings"

const minCredentialLength = 3

// ValidateCredentials checks the login form before it is sent and returns
// every problem found.
func ValidateCredentials(username, password string) []string {
	var problems []string

	switch {
	case strings.TrimSpace(username) == "":
		problems = append(problems, "Username is required")
	case len(username) < minCredentialLength:
		problems = append(problems, "Username must be at least 3 characters long")
	}

	switch {
	case strings.TrimSpace(password) == "":
		problems = append(problems, "Password is required")
	case len(password) < minCredentialLength:
		problems = append(problems, "Password must be at least 3 characters long")
	}

	return problems
}
