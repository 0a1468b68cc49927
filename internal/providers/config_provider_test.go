package providers

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"wellsync/internal/structures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validIni = `[Withings]
client_id = cid
client_secret = sec
redirect_uri = https://example.com/callback

[Intervals]
icu_api_key = key123
icu_athlete_id = i4242

[General]
withings_config = /var/lib/wellsync/withings.json
sync_interval = 6h

[Fields]
weight_field = weight
bodyfat_field = bodyFat
systolic_field = systolic
temp_field = bodyTemp

[Logger]
level = debug
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewConfigProvider_ValidFile(t *testing.T) {
	path := writeConfig(t, validIni)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "cid", conf.Withings.ClientID)
	assert.Equal(t, "sec", conf.Withings.ClientSecret)
	assert.Equal(t, "https://example.com/callback", conf.Withings.RedirectURI)
	assert.Equal(t, "key123", conf.Intervals.APIKey)
	assert.Equal(t, "i4242", conf.Intervals.AthleteID)
	assert.Equal(t, "/var/lib/wellsync/withings.json", conf.General.TokenFile)
	assert.Equal(t, 6*time.Hour, conf.General.SyncInterval)
	assert.Equal(t, "weight", conf.Fields.Weight)
	assert.Equal(t, "bodyFat", conf.Fields.BodyFat)
	assert.Equal(t, "systolic", conf.Fields.Systolic)
	assert.Equal(t, "bodyTemp", conf.Fields.Temp)
	// Unset field names stay empty, disabling those measurement types.
	assert.Empty(t, conf.Fields.Diastolic)
	assert.Empty(t, conf.Fields.Muscle)
	assert.Equal(t, "debug", conf.Logger.Level)
	assert.Equal(t, path, conf.Path)
	assert.Equal(t, "WellSync", conf.AppName)
}

func TestNewConfigProvider_DebugFlagCarriedOver(t *testing.T) {
	path := writeConfig(t, validIni)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)
	assert.True(t, conf.Debug)
}

func TestNewConfigProvider_DefaultLogLevel(t *testing.T) {
	const ini = `[Withings]
client_id = cid
client_secret = sec
redirect_uri = https://example.com/callback

[Intervals]
icu_api_key = key123
icu_athlete_id = i4242

[General]
withings_config = /var/lib/wellsync/withings.json
`
	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: writeConfig(t, ini)})
	require.NoError(t, err)
	assert.Equal(t, "info", conf.Logger.Level)
	assert.Zero(t, conf.General.SyncInterval)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "nope.ini")})
	assert.Error(t, err)
}

func TestNewConfigProvider_MissingCredentialFailsValidation(t *testing.T) {
	const ini = `[Withings]
client_secret = sec
redirect_uri = https://example.com/callback

[Intervals]
icu_api_key = key123
icu_athlete_id = i4242

[General]
withings_config = /var/lib/wellsync/withings.json
`
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: writeConfig(t, ini)})
	assert.Error(t, err)
}
