package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ByLCY/cvgen/pdfinfo"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pdf>",
	Short: "输出 PDF 的页数与逐页文本",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := pdfinfo.Inspect(args[0])
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}
		fmt.Fprintf(out, "页数: %d\n", info.PageCount)
		for i, text := range info.Pages {
			fmt.Fprintf(out, "--- 第 %d 页 ---\n%s\n", i+1, strings.TrimSpace(text))
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().Bool("json", false, "以 JSON 输出")

	rootCmd.AddCommand(inspectCmd)
}
