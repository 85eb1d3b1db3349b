package usecase

import "github.com/google/uuid"

// canonicalID parses s in any spelling uuid.Parse accepts and returns the lowercase hyphenated
// form, so stored ids and filter values always compare equal.
func canonicalID(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
