// Package mt202 handles MT202 conversion commands
package mt202

import (
	"github.com/spf13/cobra"

	"github.com/Ejyke90/iso20022-migration-service/cmd/common"
	"github.com/Ejyke90/iso20022-migration-service/cmd/root"
	"github.com/Ejyke90/iso20022-migration-service/internal/converter"
)

// Cmd represents the mt202 command
var Cmd = &cobra.Command{
	Use:   "mt202",
	Short: "Convert MT202 messages to pacs.009 XML",
	Long:  `Convert MT202 general financial institution transfers to ISO 20022 pacs.009.001.08 XML.`,
	Run:   mt202Func,
}

func mt202Func(cmd *cobra.Command, args []string) {
	root.Log.Info("MT202 convert command called")
	common.ProcessFile(converter.MT202, root.SharedFlags.Input, root.SharedFlags.Output,
		root.ConverterOptions(), root.Recorder, root.Log)
}
