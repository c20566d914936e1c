package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okrent/stylecast"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <selector>",
	Short: "Resolve the effective style for a widget descriptor",
	Long: `Load stylesheets and print the effective property mapping for one
widget descriptor given in selector form, e.g.

  stylecast resolve button.start-button:hover --sheets themes/annotator.qss

The class and state parts are optional; "button" alone resolves the
base style.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runResolve,
}

func init() {
	f := resolveCmd.Flags()
	f.StringSlice("sheets", []string{"**/*.qss"}, "Stylesheet glob patterns to load")
	f.Bool("json", false, "Print the resolved style as JSON")
}

func runResolve(cmd *cobra.Command, args []string) error {
	sel, err := stylecast.ParseSelector(args[0])
	if err != nil {
		return err
	}

	sheets := getStringsWithFallback("sheets", "resolve.sheets", []string{"**/*.qss"})
	store, err := stylecast.LoadFiles(sheets...)
	if err != nil {
		return fmt.Errorf("loading stylesheets: %w", err)
	}

	descriptor := stylecast.WidgetDescriptor{
		BaseType:   sel.Base,
		StyleClass: sel.Class,
		States: stylecast.StateSet{
			Hover:    sel.State == stylecast.StateHover,
			Disabled: sel.State == stylecast.StateDisabled,
		},
	}

	style, err := stylecast.NewResolver(store).Resolve(descriptor)
	if err != nil {
		var nbr *stylecast.NoBaseRuleError
		if !errors.As(err, &nbr) {
			return err
		}
		// Partial style is still printable; surface the gap on stderr.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return printResolvedJSON(style)
	}

	printResolvedTable(args[0], style)
	return nil
}

// printResolvedJSON emits property name -> normalized value.
func printResolvedJSON(style stylecast.ResolvedStyle) error {
	out := make(map[string]string, style.Len())
	for _, p := range style.Properties() {
		v, _ := style.Get(p)
		out[string(p)] = v.String()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// printResolvedTable prints properties grouped by category.
func printResolvedTable(selector string, style stylecast.ResolvedStyle) {
	useColors := getBoolWithFallback("color", "color", false)

	fmt.Println(stylecast.RenderStyle(stylecast.StyleCyan, selector, useColors))
	if style.Len() == 0 {
		fmt.Println("  (no matching rules)")
		return
	}

	groups := stylecast.GroupByCategory(style)
	for _, category := range stylecast.CategoryOrder {
		props := groups[category]
		if len(props) == 0 {
			continue
		}
		fmt.Printf("  %s\n", stylecast.RenderStyle(stylecast.StyleGray, string(category), useColors))
		for _, p := range props {
			v, _ := style.Get(p)
			fmt.Printf("    %-18s %s\n", p,
				stylecast.RenderStyle(stylecast.StyleGreen, v.String(), useColors))
		}
	}
}
