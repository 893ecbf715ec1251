// Package database owns the bootstrap state of the in-memory store: the seed
// users, the embedded catalog import, and the periodic reset.
package database

import (
	"fmt"
	"strings"

	"vinyl-api/database/data"
	"vinyl-api/internal/store"

	"github.com/sirupsen/logrus"
)

// PasswordHasher is the subset of the password hasher the seed needs.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// Bootstrap returns the loader that brings a fresh store to its initial
// state: seed users first, then the catalog.
func Bootstrap(hasher PasswordHasher, logger *logrus.Logger) store.Loader {
	return func(s *store.Store) error {
		if err := SeedUsers(s, hasher); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		res, err := ImportCatalog(s, strings.NewReader(data.CatalogCSV), logger)
		if err != nil {
			return fmt.Errorf("import catalog: %w", err)
		}
		logger.WithFields(logrus.Fields{
			"vinyls":   res.Vinyls,
			"listings": res.Listings,
			"skipped":  res.Skipped,
		}).Info("catalog imported")
		return nil
	}
}

// InitStore creates the store and loads the bootstrap state into it.
func InitStore(hasher PasswordHasher, logger *logrus.Logger, opts ...store.Option) (*store.Store, store.Loader, error) {
	s := store.New(opts...)
	load := Bootstrap(hasher, logger)
	if err := s.Reset(load); err != nil {
		return nil, nil, err
	}
	logger.WithField("stats", s.Stats()).Info("store ready")
	return s, load, nil
}
