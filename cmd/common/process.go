// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"os"
	"time"

	"github.com/Ejyke90/iso20022-migration-service/internal/converter"
	"github.com/Ejyke90/iso20022-migration-service/internal/convlog"
	"github.com/Ejyke90/iso20022-migration-service/internal/factory"
	"github.com/Ejyke90/iso20022-migration-service/internal/logging"
)

// ProcessFile converts a single MT message file and writes the resulting XML
// to the output file, or stdout when no output file is given. Every attempt
// is recorded through the sink with only a hash of the input.
func ProcessFile(messageType converter.Type, inputFile, outputFile string, opts factory.Options, recorder convlog.Sink, log logging.Logger) {
	if inputFile == "" {
		log.Fatal("Input file is required (use --input)")
	}

	raw, err := os.ReadFile(inputFile)
	if err != nil {
		log.WithError(err).Fatal("Failed to read input file",
			logging.Field{Key: logging.FieldInputFile, Value: inputFile})
	}

	conv, err := factory.GetWithOptions(messageType, log, opts)
	if err != nil {
		log.WithError(err).Fatal("Failed to create converter")
	}

	start := time.Now()
	xmlText, convErr := conv.Convert(string(raw))
	elapsed := time.Since(start)

	entry := convlog.Entry{
		Timestamp:    start.UTC(),
		MessageType:  string(messageType),
		InputHash:    converter.ComputeInputHash(string(raw)),
		Success:      convErr == nil,
		ProcessingMS: elapsed.Milliseconds(),
	}
	if convErr != nil {
		entry.Error = convErr.Error()
	}
	if err := recorder.Record(entry); err != nil {
		log.WithError(err).Warn("Failed to record conversion attempt")
	}

	if convErr != nil {
		log.WithError(convErr).Fatal("Conversion failed",
			logging.Field{Key: logging.FieldInputFile, Value: inputFile})
	}

	if outputFile == "" {
		fmt.Print(xmlText)
	} else if err := os.WriteFile(outputFile, []byte(xmlText), 0o644); err != nil {
		log.WithError(err).Fatal("Failed to write output file",
			logging.Field{Key: logging.FieldOutputFile, Value: outputFile})
	}

	log.Info("Conversion completed successfully!",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldDuration, Value: elapsed.Milliseconds()},
	)
}
