package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/transformspec/internal/domain"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Edit the string lists of a spec",
		Long:  "Append to or remove from a spec's string lists: " + strings.Join(domain.StringListNames, ", ") + ".",
	}
	cmd.AddCommand(newListAddCmd())
	cmd.AddCommand(newListRemoveCmd())
	return cmd
}

func newListAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <spec> <list> <item>",
		Short: "Append an item to a list",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			items, err := a.specs.AddItem(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			printList(cmd, args[1], items)
			return nil
		},
	}
}

func newListRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <spec> <list> <index>",
		Aliases: []string{"remove"},
		Short:   "Remove the item at a zero-based index",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[2], err)
			}
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			items, err := a.specs.RemoveItem(args[0], args[1], index)
			if err != nil {
				return err
			}
			printList(cmd, args[1], items)
			return nil
		},
	}
}

func printList(cmd *cobra.Command, name string, items []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d)\n", name, len(items))
	for i, item := range items {
		fmt.Fprintf(out, "  %d. %s\n", i, item)
	}
}
