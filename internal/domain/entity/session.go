package entity

type SessionState int

const (
	// SessionLoading is the zero value: the identity has not been resolved
	// yet and nothing protected may be shown.
	SessionLoading SessionState = iota
	SessionAdmin
	SessionNone
)

func (s SessionState) String() string {
	switch s {
	case SessionAdmin:
		return "authenticated-admin"
	case SessionNone:
		return "unauthenticated"
	default:
		return "loading"
	}
}

// Identity is what the identity provider knows about a signed-in account.
type Identity struct {
	UID     string
	Email   string
	IDToken string
}

// AdminIdentity is cached on an authorized session.
type AdminIdentity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Session struct {
	State  SessionState
	Admin  *AdminIdentity
	Reason string
}

func LoadingSession() Session {
	return Session{State: SessionLoading}
}

func AnonymousSession(reason string) Session {
	return Session{State: SessionNone, Reason: reason}
}

func AdminSession(admin AdminIdentity) Session {
	return Session{State: SessionAdmin, Admin: &admin}
}

func (s Session) IsAdmin() bool {
	return s.State == SessionAdmin && s.Admin != nil
}

// DisplayName falls back to "Admin" like the header does.
func (s Session) DisplayName() string {
	if s.Admin == nil || s.Admin.Name == "" {
		return "Admin"
	}
	return s.Admin.Name
}
