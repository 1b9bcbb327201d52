// Package mt103 handles MT103 conversion commands
package mt103

import (
	"github.com/spf13/cobra"

	"github.com/Ejyke90/iso20022-migration-service/cmd/common"
	"github.com/Ejyke90/iso20022-migration-service/cmd/root"
	"github.com/Ejyke90/iso20022-migration-service/internal/converter"
)

// Cmd represents the mt103 command
var Cmd = &cobra.Command{
	Use:   "mt103",
	Short: "Convert MT103 messages to pacs.008 XML",
	Long:  `Convert MT103 single customer credit transfers to ISO 20022 pacs.008.001.08 XML.`,
	Run:   mt103Func,
}

func mt103Func(cmd *cobra.Command, args []string) {
	root.Log.Info("MT103 convert command called")
	common.ProcessFile(converter.MT103, root.SharedFlags.Input, root.SharedFlags.Output,
		root.ConverterOptions(), root.Recorder, root.Log)
}
