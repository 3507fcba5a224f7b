package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRulesCommand(global *globalFlags) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List supported languages and their rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := global.load()
			if err != nil {
				return err
			}
			reg := e.analyzer.Registry()

			langs := reg.Languages()
			if lang != "" {
				if _, ok := reg.RulesFor(lang); !ok {
					return fmt.Errorf("unsupported language %q", lang)
				}
				langs = []string{lang}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, id := range langs {
				set, _ := reg.RulesFor(id)
				fmt.Fprintf(tw, "%s (%d rules)\n", set.Language, set.Len())
				for _, r := range set.Rules {
					fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.ID, r.Severity, r.Title)
				}
			}
			for _, p := range reg.Problems() {
				fmt.Fprintf(tw, "problem: %v\n", p)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Only list rules for this language")
	return cmd
}
