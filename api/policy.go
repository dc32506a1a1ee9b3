package api

import "studyvault/edu-api/model"

// canModify is the one authorization rule in the system: a pre-existing
// owned row may only be mutated by its owner or by an admin. Reads and
// creations never come through here
func canModify(u *model.User, ownerID string) bool {
	return u.ID == ownerID || u.IsAdmin()
}
