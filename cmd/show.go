package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ai-heroes/internal/catalog"
	"github.com/ziadkadry99/ai-heroes/internal/views"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one character's profile",
	Long:  `Prints the detail fields of a character. Without an id, pick one interactively.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cat, _, err := setup()
		if err != nil {
			return err
		}

		var c catalog.Character
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			if c, err = cat.ByID(id); err != nil {
				return err
			}
		} else {
			if c, err = pickCharacter(cat); err != nil {
				return err
			}
		}

		printFields(os.Stdout, views.CharacterFields(views.DetailPrefix, c), views.DetailPrefix)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// pickCharacter lets the user choose a character from a list.
func pickCharacter(cat *catalog.Catalog) (catalog.Character, error) {
	chars := cat.All()
	items := make([]string, len(chars))
	for i, c := range chars {
		items[i] = fmt.Sprintf("%s %s (%s)", c.Icon, c.Name, c.Role)
	}
	prompt := promptui.Select{
		Label: "Character",
		Items: items,
		Size:  len(items),
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return catalog.Character{}, fmt.Errorf("character selection: %w", err)
	}
	return chars[idx], nil
}

// printFields writes one "Label: value" line per field, with the prefix
// stripped from the target id.
func printFields(w io.Writer, fields views.Fields, prefix string) {
	for _, f := range fields {
		fmt.Fprintf(w, "%-8s %s\n", strings.TrimPrefix(f.ID, prefix)+":", f.Text)
	}
}
