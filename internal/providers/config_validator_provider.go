package providers

import (
	"fmt"
	"time"
	"wellsync/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks each config section against its validate tags.
// Sections are validated separately so error messages carry the field name
// the operator actually wrote in the ini file.
func (cv *CnfValidator) Validate() error {
	sections := []interface{}{
		&cv.conf.Withings,
		&cv.conf.Intervals,
		&cv.conf.General,
		&cv.conf.Logger,
	}

	for _, section := range sections {
		v := validate.Struct(section)
		if !v.Validate() {
			return v.Errors.OneError()
		}
	}

	// gron cannot schedule below one second; reject instead of clamping.
	if iv := cv.conf.General.SyncInterval; iv != 0 && iv < time.Second {
		return fmt.Errorf("sync_interval must be at least 1s, got %s", iv)
	}

	return nil
}
