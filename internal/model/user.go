// internal/model/user.go
package model

// GrantedAuthority is a single permission or role string associated with a
// user. Equality is by value; the configured role prefix is already applied
// by the time a GrantedAuthority is handed out.
type GrantedAuthority string

func (a GrantedAuthority) String() string {
	return string(a)
}

// Principal is the authenticated-identity shape consumed by the upstream
// authentication framework: credentials plus granted authorities.
type Principal interface {
	GetUsername() string
	GetPassword() string
	IsEnabled() bool
	GetAuthorities() []GrantedAuthority
}

// User maps the "users" table: login name, opaque password, email and the
// enabled flag. Authorities are loaded separately per lookup and never
// persisted through this struct.
type User struct {
	Username    string             `gorm:"size:255;not null;unique" json:"username"`
	Password    string             `gorm:"size:255;not null" json:"password,omitempty"`
	Email       string             `gorm:"size:255;unique" json:"email"`
	Enabled     bool               `gorm:"not null" json:"enabled"`
	Authorities []GrantedAuthority `gorm:"-" json:"authorities"`
}

func (u *User) GetUsername() string {
	return u.Username
}

func (u *User) GetPassword() string {
	return u.Password
}

func (u *User) IsEnabled() bool {
	return u.Enabled
}

func (u *User) GetAuthorities() []GrantedAuthority {
	return u.Authorities
}

// Authority maps one row of the "authorities" table: a username paired with
// a single authority string. Read-only from this service's perspective.
type Authority struct {
	Username  string `gorm:"size:255;not null" json:"username"`
	Authority string `gorm:"size:255;not null" json:"authority"`
}
