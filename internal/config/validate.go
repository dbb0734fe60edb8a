package config

import (
	"errors"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGlossary(); err != nil {
		return err
	}
	if err := c.validateChecker(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateGlossary() error {
	if strings.TrimSpace(c.Glossary.Path) == "" {
		return errors.New("glossary.path must be set")
	}
	return nil
}

func (c *Config) validateChecker() error {
	if strings.TrimSpace(c.Checker.Root) == "" {
		return errors.New("checker.root must be set")
	}
	if c.Checker.PassiveVoiceThreshold < 0 {
		return errors.New("checker.passive_voice_threshold must be >= 0")
	}
	return nil
}
