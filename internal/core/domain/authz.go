package domain

// Identity is who a request acts as. The zero value is the anonymous caller.
type Identity struct {
	UserID   string
	Username string
	IsAdmin  bool
}

// Anonymous reports whether no user was authenticated for the request.
func (i Identity) Anonymous() bool { return i.UserID == "" }

// Resource is anything subject to write authorization.
type Resource interface {
	// OwnerID is the author allowed to mutate the resource.
	OwnerID() string
	// AdminOnly resources ignore ownership and require an admin.
	AdminOnly() bool
}

// Authorize decides whether who may create, update or delete res.
// Reads are never routed through here; they are open to everyone.
//
// Anonymous callers get ErrUnauthenticated, authenticated callers that are
// neither the owner nor (for admin-only resources) an admin get ErrForbidden.
func Authorize(who Identity, res Resource) error {
	if who.Anonymous() {
		return ErrUnauthenticated
	}
	if res.AdminOnly() {
		if !who.IsAdmin {
			return ErrForbidden
		}
		return nil
	}
	if res.OwnerID() != who.UserID {
		return ErrForbidden
	}
	return nil
}
