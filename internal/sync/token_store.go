package sync

import (
	"os"
	"wellsync/internal/models"
	"wellsync/internal/providers"
	"wellsync/internal/structures"
)

// TokenStoreInterface owns the durable credential record.
type TokenStoreInterface interface {
	// Load returns the stored record, or nil when none exists yet.
	Load() (*models.TokenRecord, error)
	Save(rec *models.TokenRecord) error
}

type TokenStore struct {
	path   string
	logger providers.Logger
}

func NewTokenStore(conf *structures.Config, logger providers.Logger) *TokenStore {
	return &TokenStore{
		path:   conf.General.TokenFile,
		logger: logger,
	}
}

func (s *TokenStore) Load() (*models.TokenRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	rec, err := models.DecodeTokenRecord(data)
	if err != nil {
		return nil, err
	}
	s.logger.Debugf(providers.TypeApp, "Token data loaded from %s", s.path)
	return rec, nil
}

// Save persists the provider's full token body. The write is atomic so a
// crash never leaves a truncated credential file behind.
func (s *TokenStore) Save(rec *models.TokenRecord) error {
	data, err := rec.Bytes()
	if err != nil {
		return err
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return err
	}
	s.logger.Debugf(providers.TypeApp, "Token data saved to %s", s.path)
	return nil
}

// writeFileAtomic writes data to a temp file, fsyncs and renames it over
// the target.
func writeFileAtomic(fileName string, data []byte) error {
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}
