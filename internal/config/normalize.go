package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeGlossary(); err != nil {
		return err
	}
	if err := c.normalizeChecker(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeGlossary() error {
	if strings.TrimSpace(c.Glossary.Path) == "" {
		c.Glossary.Path = defaultGlossaryPath
	}
	expanded, err := expandPath(c.Glossary.Path)
	if err != nil {
		return fmt.Errorf("glossary.path: %w", err)
	}
	c.Glossary.Path = expanded
	return nil
}

func (c *Config) normalizeChecker() error {
	if strings.TrimSpace(c.Checker.Root) == "" {
		c.Checker.Root = defaultCheckerRoot
	}
	expanded, err := expandPath(c.Checker.Root)
	if err != nil {
		return fmt.Errorf("checker.root: %w", err)
	}
	c.Checker.Root = expanded
	if c.Checker.PassiveVoiceThreshold == 0 {
		c.Checker.PassiveVoiceThreshold = defaultPassiveVoiceThreshold
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
