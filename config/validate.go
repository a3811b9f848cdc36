package config

import (
	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/logger"
	"github.com/rayners/fvtt-realms-and-reaches/realm/codec"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	// Author is freeform - empty means unattributed
	// No validation needed here

	if c.Log.Verbosity < logger.VerbosityUser || c.Log.Verbosity > logger.VerbosityAll {
		return errors.Newf("log.verbosity must be between %d and %d, got %d",
			logger.VerbosityUser, logger.VerbosityAll, c.Log.Verbosity)
	}

	if _, err := codec.ParsePolicy(c.Import.DefaultPolicy); err != nil {
		return errors.Wrap(err, "import.default_policy")
	}

	for _, pack := range c.Namespaces.Packs {
		if pack == "" {
			return errors.New("namespaces.packs must not contain empty paths")
		}
	}

	return nil
}
