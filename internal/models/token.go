package models

import (
	json "github.com/goccy/go-json"
)

// TokenRecord is the durable credential record. Raw holds the provider's
// full response body so fields we do not model survive persistence.
type TokenRecord struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Raw          json.RawMessage `json:"-"`
}

// DecodeTokenRecord parses a provider token body, keeping the original
// bytes for pass-through persistence.
func DecodeTokenRecord(data []byte) (*TokenRecord, error) {
	var rec TokenRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	rec.Raw = append(json.RawMessage(nil), data...)
	return &rec, nil
}

// Bytes returns the form persisted to disk: the provider's verbatim body
// when available, otherwise just the token pair.
func (t *TokenRecord) Bytes() ([]byte, error) {
	if len(t.Raw) > 0 {
		return t.Raw, nil
	}
	return json.Marshal(t)
}
