// Package factory creates message converters by type.
package factory

import (
	"fmt"
	"strings"

	"github.com/Ejyke90/iso20022-migration-service/internal/converter"
	"github.com/Ejyke90/iso20022-migration-service/internal/logging"
	"github.com/Ejyke90/iso20022-migration-service/internal/mt101"
	"github.com/Ejyke90/iso20022-migration-service/internal/mt102"
	"github.com/Ejyke90/iso20022-migration-service/internal/mt103"
	"github.com/Ejyke90/iso20022-migration-service/internal/mt202"
)

// Options adjust converter construction across message types.
type Options struct {
	// StrictChargeCodes makes MT101/MT102 fail on unknown :71A: codes instead
	// of defaulting to shared charges. MT103 is always strict.
	StrictChargeCodes bool
}

// Get returns a new converter for the given message type with default options.
func Get(messageType converter.Type, logger logging.Logger) (converter.Converter, error) {
	return GetWithOptions(messageType, logger, Options{})
}

// GetWithOptions returns a new converter for the given message type.
func GetWithOptions(messageType converter.Type, logger logging.Logger, opts Options) (converter.Converter, error) {
	switch messageType {
	case converter.MT103:
		return mt103.New(logger), nil
	case converter.MT101:
		if opts.StrictChargeCodes {
			return mt101.New(logger, mt101.WithStrictCharges()), nil
		}
		return mt101.New(logger), nil
	case converter.MT102:
		if opts.StrictChargeCodes {
			return mt102.New(logger, mt102.WithStrictCharges()), nil
		}
		return mt102.New(logger), nil
	case converter.MT202:
		return mt202.New(logger), nil
	default:
		return nil, fmt.Errorf("unknown message type: %s", messageType)
	}
}

// ParseType resolves a user-supplied message type name ("mt103", "MT202").
func ParseType(name string) (converter.Type, error) {
	switch converter.Type(strings.ToLower(strings.TrimSpace(name))) {
	case converter.MT103:
		return converter.MT103, nil
	case converter.MT101:
		return converter.MT101, nil
	case converter.MT102:
		return converter.MT102, nil
	case converter.MT202:
		return converter.MT202, nil
	default:
		return "", fmt.Errorf("unknown message type: %s", name)
	}
}
