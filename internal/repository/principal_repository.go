// internal/repository/principal_repository.go
package repository

import (
	"errors"

	"principal-lookup/internal/config"
	"principal-lookup/internal/model"

	"gorm.io/gorm"
)

// The user queries carry an exactly-one contract: a lookup that matches no
// row fails with ErrNoResult, and a lookup that matches several rows fails
// with ErrNonUniqueResult. The two are distinct so callers can tell a missing
// user from a data-integrity fault.
var (
	ErrNoResult        = errors.New("query returned no result")
	ErrNonUniqueResult = errors.New("query returned more than one result")
)

type PrincipalRepository interface {
	FindOneByUsername(username string) (*model.User, error)
	FindOneByEmail(email string) (*model.User, error)
	FindAuthoritiesByUsername(username string) ([]model.Authority, error)
}

// PrincipalRepositoryImpl executes the configured parameterized queries
// against the relational store. The query strings are fixed at construction;
// each call re-queries the store.
type PrincipalRepositoryImpl struct {
	db  *gorm.DB
	cfg config.LookupConfig
}

func NewPrincipalRepository(db *gorm.DB, cfg *config.Config) *PrincipalRepositoryImpl {
	return &PrincipalRepositoryImpl{db: db, cfg: cfg.Lookup}
}

func (r *PrincipalRepositoryImpl) FindOneByUsername(username string) (*model.User, error) {
	return r.findOne(r.cfg.UsersByUsernameQuery, username)
}

func (r *PrincipalRepositoryImpl) FindOneByEmail(email string) (*model.User, error) {
	return r.findOne(r.cfg.UsersByEmailQuery, email)
}

func (r *PrincipalRepositoryImpl) findOne(query, arg string) (*model.User, error) {
	var users []model.User
	if err := r.db.Raw(query, arg).Scan(&users).Error; err != nil {
		return nil, err
	}
	switch len(users) {
	case 0:
		return nil, ErrNoResult
	case 1:
		return &users[0], nil
	default:
		return nil, ErrNonUniqueResult
	}
}

// FindAuthoritiesByUsername returns the authority rows for the given
// username in store result order. Zero rows is a valid result.
func (r *PrincipalRepositoryImpl) FindAuthoritiesByUsername(username string) ([]model.Authority, error) {
	var authorities []model.Authority
	if err := r.db.Raw(r.cfg.AuthoritiesByUsernameQuery, username).Scan(&authorities).Error; err != nil {
		return nil, err
	}
	return authorities, nil
}
