package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-escala/theory"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the scale catalog or the key registry",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().Bool("keys", false, "list key signatures instead of scales")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	if keys, _ := cmd.Flags().GetBool("keys"); keys {
		fmt.Fprintln(tw, "KEY\tSIGNATURE\tEQUIVALENT")
		for _, name := range theory.Keys() {
			k, err := theory.LookupKey(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", k.Name, strings.Join(k.Accidentals, " "), k.Equivalent)
		}
		return tw.Flush()
	}

	fmt.Fprintln(tw, "SCALE\tINTERVALS\tSTART\tKEY")
	for _, name := range theory.Scales() {
		def, err := theory.LookupScale(name)
		if err != nil {
			return err
		}
		steps := make([]string, len(def.Intervals))
		for i, s := range def.Intervals {
			steps[i] = fmt.Sprint(s)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", def.Name, strings.Join(steps, " "), def.StartNote, def.StartKey)
	}
	return tw.Flush()
}
