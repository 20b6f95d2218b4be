package auth

// IdentityRecord is the identity the provider vouches for, derived from
// verified identity token claims. It carries no application role; roles
// come from the backend profile sync.
type IdentityRecord struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	Username      string `json:"username"`
	EmailVerified bool   `json:"email_verified"`
}

// NewIdentityRecord builds a record from raw claim values. When the
// provider carries no preferred username the email stands in for it.
func NewIdentityRecord(subject, email, preferredUsername string, emailVerified bool) *IdentityRecord {
	username := preferredUsername
	if username == "" {
		username = email
	}

	return &IdentityRecord{
		Subject:       subject,
		Email:         email,
		Username:      username,
		EmailVerified: emailVerified,
	}
}
