package service

import "errors"

var ErrAccessDenied = errors.New("access denied")

// VerifyAccess checks that the user id claimed in the request path matches
// the authenticated user id. Every task endpoint runs this before touching
// the store.
func VerifyAccess(pathUserID, authUserID string) error {
	if pathUserID != authUserID {
		return ErrAccessDenied
	}
	return nil
}
