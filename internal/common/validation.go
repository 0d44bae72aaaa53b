package common

import "fmt"

// ValidateCredentials checks the login and password length bounds. The
// account service trusts its callers, so every transport runs this first.
func ValidateCredentials(login, password string) error {
	if len(login) < MinLoginLength || len(login) > MaxLoginLength {
		return fmt.Errorf("%w: length must be %d-%d bytes", ErrorInvalidLoginFormat, MinLoginLength, MaxLoginLength)
	}
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: length must be %d-%d bytes", ErrorInvalidPasswordFormat, MinPasswordLength, MaxPasswordLength)
	}
	return nil
}
