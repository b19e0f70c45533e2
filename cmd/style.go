package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/easylandingweb/easylanding/internal/style"
)

var styleCmd = &cobra.Command{
	Use:   "style [description]",
	Short: "Show how a description or template is styled",
	Long: `Without arguments, lists the templates and the keyword groups the AI
customization understands. With a description, shows which color palette
and mood rules it triggers and prints the generated CSS.`,
	Args: cobra.ArbitraryArgs,
	RunE: runStyle,
}

func init() {
	styleCmd.Flags().String("template", "", "show the resolved slots of a template instead")
	styleCmd.Flags().Bool("dark", false, "use the dark variant with --template")
	styleCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(styleCmd)
}

func runStyle(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	tmpl, _ := cmd.Flags().GetString("template")
	dark, _ := cmd.Flags().GetBool("dark")

	if tmpl != "" {
		if !style.IsTemplate(tmpl) {
			return fmt.Errorf("unknown template %q", tmpl)
		}
		st := style.Resolve(style.Request{Template: tmpl, DarkMode: dark})
		if jsonOutput {
			return printJSON(st)
		}
		fmt.Printf("Template %s (dark=%v)\n", tmpl, dark)
		fmt.Printf("  background: %s\n  text:       %s\n  primary:    %s\n  secondary:  %s\n  accent:     %s\n  title font: %s\n  body font:  %s\n",
			st.BackgroundColor, st.TextColor, st.PrimaryColor, st.SecondaryColor, st.AccentColor, st.TitleFont, st.BodyFont)
		return nil
	}

	if len(args) == 0 {
		if jsonOutput {
			return printJSON(map[string]any{
				"templates": style.Templates(),
				"palettes":  style.PaletteKeywords(),
				"rules":     style.Rules(),
			})
		}
		fmt.Println("Templates:")
		for _, t := range style.Templates() {
			fmt.Printf("  %-8s %s\n", t.ID, t.Description)
		}
		fmt.Println("\nColor keywords (first match wins):")
		for _, r := range style.PaletteKeywords() {
			fmt.Printf("  %-14s %s\n", r.Name, strings.Join(r.Keywords, ", "))
		}
		fmt.Println("\nMood keywords (all matches apply):")
		for _, r := range style.Rules() {
			fmt.Printf("  %-14s %s\n", r.Name, strings.Join(r.Keywords, ", "))
		}
		return nil
	}

	desc := strings.Join(args, " ")
	a := style.Analyze(desc)
	if jsonOutput {
		return printJSON(a)
	}

	if a.Palette.Matched {
		fmt.Printf("Palette: %s (primary %s)\n", a.Palette.Name, a.Palette.Primary)
	} else {
		fmt.Println("Palette: none matched")
	}
	if len(a.Rules) > 0 {
		fmt.Printf("Mood rules: %s\n", strings.Join(a.Rules, ", "))
	} else {
		fmt.Println("Mood rules: none")
	}
	if a.FontImports != "" {
		fmt.Printf("\nFont imports:\n%s", a.FontImports)
	}
	if a.CSS == "" {
		fmt.Println("\nNo custom CSS: the page keeps the base style.")
		return nil
	}
	if verbose {
		fmt.Printf("\nCSS:%s", a.CSS)
	} else {
		fmt.Printf("\n%d bytes of custom CSS (use -v to print it)\n", len(a.CSS))
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
