package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// loadFromEnvironment fills the config from environment variables,
// falling back to the struct-tag defaults. Sections are walked
// recursively; fields without an env tag are left untouched.
func loadFromEnvironment(cfg *Config) error {
	return loadSection(reflect.ValueOf(cfg).Elem())
}

func loadSection(section reflect.Value) error {
	sectionType := section.Type()

	for i := 0; i < section.NumField(); i++ {
		field := section.Field(i)
		tags := sectionType.Field(i).Tag

		if !field.CanSet() {
			continue
		}
		if field.Kind() == reflect.Struct {
			if err := loadSection(field); err != nil {
				return err
			}
			continue
		}

		envKey := tags.Get("env")
		if envKey == "" {
			continue
		}

		raw := os.Getenv(envKey)
		if raw == "" {
			raw = tags.Get("default")
		}
		if raw == "" {
			continue
		}

		if err := assign(field, raw); err != nil {
			return fmt.Errorf("%s=%q: %w", envKey, raw, err)
		}
	}

	return nil
}

// assign parses raw into the field. The config only carries strings,
// ints and durations; anything else in a section is a programming
// error surfaced at startup.
func assign(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(n)
	default:
		return fmt.Errorf("unsupported config field kind %s", field.Kind())
	}

	return nil
}
