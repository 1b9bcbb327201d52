// Package mt101 handles MT101 conversion commands
package mt101

import (
	"github.com/spf13/cobra"

	"github.com/Ejyke90/iso20022-migration-service/cmd/common"
	"github.com/Ejyke90/iso20022-migration-service/cmd/root"
	"github.com/Ejyke90/iso20022-migration-service/internal/converter"
)

// Cmd represents the mt101 command
var Cmd = &cobra.Command{
	Use:   "mt101",
	Short: "Convert MT101 messages to pain.001 XML",
	Long:  `Convert MT101 requests for transfer to ISO 20022 pain.001.001.09 XML.`,
	Run:   mt101Func,
}

func mt101Func(cmd *cobra.Command, args []string) {
	root.Log.Info("MT101 convert command called")
	common.ProcessFile(converter.MT101, root.SharedFlags.Input, root.SharedFlags.Output,
		root.ConverterOptions(), root.Recorder, root.Log)
}
