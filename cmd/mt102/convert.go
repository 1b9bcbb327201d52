// Package mt102 handles MT102 conversion commands
package mt102

import (
	"github.com/spf13/cobra"

	"github.com/Ejyke90/iso20022-migration-service/cmd/common"
	"github.com/Ejyke90/iso20022-migration-service/cmd/root"
	"github.com/Ejyke90/iso20022-migration-service/internal/converter"
)

// Cmd represents the mt102 command
var Cmd = &cobra.Command{
	Use:   "mt102",
	Short: "Convert MT102 messages to pacs.008 XML",
	Long:  `Convert MT102 multiple customer credit transfers to ISO 20022 pacs.008.001.08 XML.`,
	Run:   mt102Func,
}

func mt102Func(cmd *cobra.Command, args []string) {
	root.Log.Info("MT102 convert command called")
	common.ProcessFile(converter.MT102, root.SharedFlags.Input, root.SharedFlags.Output,
		root.ConverterOptions(), root.Recorder, root.Log)
}
