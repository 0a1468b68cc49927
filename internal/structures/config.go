package structures

import "time"

type Withings struct {
	ClientID     string `mapstructure:"client_id" validate:"required"`
	ClientSecret string `mapstructure:"client_secret" validate:"required"`
	RedirectURI  string `mapstructure:"redirect_uri" validate:"required"`
}

type Intervals struct {
	APIKey    string `mapstructure:"icu_api_key" validate:"required"`
	AthleteID string `mapstructure:"icu_athlete_id" validate:"required"`
}

type General struct {
	// TokenFile is where the Withings credential record is persisted.
	TokenFile string `mapstructure:"withings_config" validate:"required|unixPath"`
	// SyncInterval enables daemon mode when set (minimum 1s); zero means
	// one run and exit.
	SyncInterval time.Duration `mapstructure:"sync_interval"`
}

// Fields maps measurement kinds to Intervals.icu wellness field names.
// An empty name disables capture of that measurement kind.
type Fields struct {
	Weight    string `mapstructure:"weight_field"`
	BodyFat   string `mapstructure:"bodyfat_field"`
	Diastolic string `mapstructure:"diastolic_field"`
	Systolic  string `mapstructure:"systolic_field"`
	Muscle    string `mapstructure:"muscle_field"`
	Temp      string `mapstructure:"temp_field"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	File  string `mapstructure:"file"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Withings  Withings     `mapstructure:"withings"`
	Intervals Intervals    `mapstructure:"intervals"`
	General   General      `mapstructure:"general"`
	Fields    Fields       `mapstructure:"fields"`
	Logger    LoggerConfig `mapstructure:"logger"`
}

type CliFlags struct {
	ConfigPath  string
	AuthCode    string
	StartDate   string
	ForceResync bool
	DebugMode   bool
}
