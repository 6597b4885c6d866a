// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}

// ValidateFullName checks the display name length bounds.
func ValidateFullName(fullname string) error {
	if len(fullname) < 1 {
		return fmt.Errorf("fullname is required")
	}
	if len(fullname) > 100 {
		return fmt.Errorf("fullname must not exceed 100 characters")
	}
	return nil
}

// ValidatePassword checks the password length bounds.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}
	if len(password) > 100 {
		return fmt.Errorf("password must not exceed 100 characters")
	}
	return nil
}

// ValidatePostTitle checks the post title length bounds.
func ValidatePostTitle(title string) error {
	if len(title) < 1 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 100 {
		return fmt.Errorf("title must not exceed 100 characters")
	}
	return nil
}

// ValidatePostContent checks the post content length bounds.
func ValidatePostContent(content string) error {
	if len(content) < 1 {
		return fmt.Errorf("content is required")
	}
	if len(content) > 1024 {
		return fmt.Errorf("content must not exceed 1024 characters")
	}
	return nil
}
