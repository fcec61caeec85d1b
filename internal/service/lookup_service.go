// internal/service/lookup_service.go
package service

import (
	"errors"

	"principal-lookup/internal/config"
	"principal-lookup/internal/model"
	"principal-lookup/internal/repository"
)

var (
	// ErrUserNotFound is returned when no user row matches the given
	// username or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrAmbiguousUser is returned when the user query matches more than one
	// row. That is a data-integrity fault, not a failed authentication.
	ErrAmbiguousUser = errors.New("user lookup matched multiple rows")
)

// CustomAuthoritiesFunc lets a deployment append or rewrite authorities after
// the store-derived set has been computed and prefixed. It receives the
// looked-up username and the current authorities and returns the final set.
type CustomAuthoritiesFunc func(username string, authorities []model.GrantedAuthority) []model.GrantedAuthority

type LookupService interface {
	LookupByUsername(username string) (model.Principal, error)
	LookupByEmail(email string) (model.Principal, error)
}

// LookupServiceImpl resolves a username or email to a Principal: one query
// for the user row, one for its authority rows, prefix applied uniformly.
// Calls are stateless; only the construction-time configuration is shared.
type LookupServiceImpl struct {
	repo              repository.PrincipalRepository
	rolePrefix        string
	usernameBasedPK   bool
	customAuthorities CustomAuthoritiesFunc
}

func NewLookupService(repo repository.PrincipalRepository, cfg *config.Config) *LookupServiceImpl {
	return &LookupServiceImpl{
		repo:            repo,
		rolePrefix:      cfg.Lookup.RolePrefix,
		usernameBasedPK: cfg.Lookup.UsernameBasedPrimaryKey,
	}
}

// SetCustomAuthorities installs the augmentation hook. Call before the
// service is placed into use; a nil hook leaves authorities unchanged.
func (s *LookupServiceImpl) SetCustomAuthorities(fn CustomAuthoritiesFunc) {
	s.customAuthorities = fn
}

// UsernameBasedPrimaryKey reports whether the configured user queries return
// the canonical username rather than an opaque primary key. Advisory only.
func (s *LookupServiceImpl) UsernameBasedPrimaryKey() bool {
	return s.usernameBasedPK
}

func (s *LookupServiceImpl) LookupByUsername(username string) (model.Principal, error) {
	user, err := s.repo.FindOneByUsername(username)
	if err != nil {
		return nil, s.mapLookupError(err)
	}
	return s.fillAuthorities(user)
}

func (s *LookupServiceImpl) LookupByEmail(email string) (model.Principal, error) {
	user, err := s.repo.FindOneByEmail(email)
	if err != nil {
		return nil, s.mapLookupError(err)
	}
	return s.fillAuthorities(user)
}

// fillAuthorities loads the authority rows for the user, maps each row to
// rolePrefix + authority in store order, runs the custom hook, and attaches
// the result to a copy of the user. The repository-loaded record is never
// mutated, so callers cannot observe the pre-fill value through an alias.
func (s *LookupServiceImpl) fillAuthorities(user *model.User) (model.Principal, error) {
	rows, err := s.repo.FindAuthoritiesByUsername(user.Username)
	if err != nil {
		return nil, err
	}

	authorities := make([]model.GrantedAuthority, 0, len(rows))
	for _, row := range rows {
		authorities = append(authorities, model.GrantedAuthority(s.rolePrefix+row.Authority))
	}

	if s.customAuthorities != nil {
		authorities = s.customAuthorities(user.Username, authorities)
	}

	principal := *user
	principal.Authorities = authorities
	return &principal, nil
}

// mapLookupError normalizes the store's exactly-one contract: zero rows is
// "user not found", multiple rows is an ambiguity fault. Anything else
// propagates unchanged.
func (s *LookupServiceImpl) mapLookupError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNoResult):
		return ErrUserNotFound
	case errors.Is(err, repository.ErrNonUniqueResult):
		return ErrAmbiguousUser
	default:
		return err
	}
}
