package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ptypek/listic/internal/client"
	"github.com/ptypek/listic/internal/db"
	"github.com/ptypek/listic/internal/identity"
	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/network"
	"github.com/ptypek/listic/internal/service/listview"
)

var (
	serverURL string
	authToken string

	addQuantity float64
	addUnit     string
	addCategory int64

	setName     string
	setQuantity float64
	setUnit     string
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Edit items of your latest shopping list",
	Long: `Item commands talk to a running listic server and work on the most
recently created list of the token's user.

The server address and token default to LISTIC_SERVER_URL and LISTIC_TOKEN.`,
}

var itemShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the latest list grouped by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		co, err := newCoordinator()
		if err != nil {
			return err
		}
		view, err := co.View(cmd.Context())
		if err != nil {
			return err
		}
		printView(cmd.OutOrStdout(), view)
		return nil
	},
}

var itemAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add an item to the latest list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		co, err := newCoordinator()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		list, err := co.Load(ctx)
		if err != nil {
			return err
		}
		categoryID := addCategory
		if categoryID == 0 {
			if categoryID, err = defaultCategory(ctx, co); err != nil {
				return err
			}
		}
		item, err := co.AddItem(ctx, model.NewListItem{
			ListID:     list.ID,
			CategoryID: categoryID,
			Name:       args[0],
			Quantity:   addQuantity,
			Unit:       addUnit,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s (id %d)\n", item.Name, item.ID)
		return nil
	},
}

var itemSetCmd = &cobra.Command{
	Use:   "set [item-id]",
	Short: "Change an item's name, quantity or unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch model.ListItemPatch
		if cmd.Flags().Changed("name") {
			patch.Name = &setName
		}
		if cmd.Flags().Changed("qty") {
			patch.Quantity = &setQuantity
		}
		if cmd.Flags().Changed("unit") {
			patch.Unit = &setUnit
		}
		return updateItem(cmd, args[0], patch)
	},
}

var itemCheckCmd = &cobra.Command{
	Use:   "check [item-id]",
	Short: "Mark an item as bought",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checked := true
		return updateItem(cmd, args[0], model.ListItemPatch{IsChecked: &checked})
	},
}

var itemUncheckCmd = &cobra.Command{
	Use:   "uncheck [item-id]",
	Short: "Mark an item as not bought",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checked := false
		return updateItem(cmd, args[0], model.ListItemPatch{IsChecked: &checked})
	},
}

var itemRemoveCmd = &cobra.Command{
	Use:     "rm [item-id]",
	Aliases: []string{"remove"},
	Short:   "Remove an item",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseItemID(args[0])
		if err != nil {
			return err
		}
		co, err := newCoordinator()
		if err != nil {
			return err
		}
		if err := co.DeleteItem(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d\n", id)
		return nil
	},
}

var itemFlagCmd = &cobra.Command{
	Use:   "flag [item-id]",
	Short: "Report a generated item as wrong",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseItemID(args[0])
		if err != nil {
			return err
		}
		co, err := newCoordinator()
		if err != nil {
			return err
		}
		if err := co.ReportAIFeedback(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "thanks, feedback recorded")
		return nil
	},
}

func init() {
	itemCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server base URL (default LISTIC_SERVER_URL)")
	itemCmd.PersistentFlags().StringVar(&authToken, "token", "", "bearer token (default LISTIC_TOKEN)")

	itemAddCmd.Flags().Float64Var(&addQuantity, "qty", 1, "quantity")
	itemAddCmd.Flags().StringVar(&addUnit, "unit", "", "unit, e.g. kg or pcs")
	itemAddCmd.Flags().Int64Var(&addCategory, "category", 0, "category id (default: "+db.DefaultCategoryName+")")

	itemSetCmd.Flags().StringVar(&setName, "name", "", "new name")
	itemSetCmd.Flags().Float64Var(&setQuantity, "qty", 0, "new quantity")
	itemSetCmd.Flags().StringVar(&setUnit, "unit", "", "new unit")

	itemCmd.AddCommand(itemShowCmd, itemAddCmd, itemSetCmd, itemCheckCmd, itemUncheckCmd, itemRemoveCmd, itemFlagCmd)
}

func newCoordinator() (*client.Coordinator, error) {
	token := authToken
	if token == "" {
		token = cfg.Client.Token
	}
	if token == "" {
		return nil, client.ErrUnauthenticated
	}
	userID, err := identity.SubjectUnverified(token)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	base := serverURL
	if base == "" {
		base = cfg.Client.ServerURL
	}

	factory, err := network.NewClientFactory(cfg.Client.ProxyURL)
	if err != nil {
		return nil, err
	}
	store := client.NewHTTPStore(base, token, userID, factory.NewHTTPClient(0))
	return client.NewCoordinator(store, client.StaticIdentity(userID), client.NewListCache()), nil
}

func updateItem(cmd *cobra.Command, rawID string, patch model.ListItemPatch) error {
	id, err := parseItemID(rawID)
	if err != nil {
		return err
	}
	co, err := newCoordinator()
	if err != nil {
		return err
	}
	if _, err := co.Load(cmd.Context()); err != nil && !errors.Is(err, client.ErrNotFound) {
		return err
	}
	item, err := co.UpdateItem(cmd.Context(), id, patch)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", formatItem(item))
	return nil
}

func defaultCategory(ctx context.Context, co *client.Coordinator) (int64, error) {
	categories, err := co.Categories(ctx)
	if err != nil {
		return 0, err
	}
	for _, c := range categories {
		if c.Name == db.DefaultCategoryName {
			return c.ID, nil
		}
	}
	return 0, fmt.Errorf("category %q not found, pass --category", db.DefaultCategoryName)
}

func parseItemID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid item id %q", raw)
	}
	return id, nil
}

func formatItem(item model.ListItem) string {
	mark := " "
	if item.IsChecked {
		mark = "x"
	}
	qty := strconv.FormatFloat(item.Quantity, 'f', -1, 64)
	if item.Unit != "" {
		qty += " " + item.Unit
	}
	return fmt.Sprintf("[%s] %d %s (%s)", mark, item.ID, item.Name, qty)
}

func printView(w io.Writer, view model.ListView) {
	fmt.Fprintf(w, "%s (items: %d)\n", view.Name, listview.Count(view.GroupedItems))
	if len(view.GroupedItems) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	for _, group := range view.GroupedItems {
		fmt.Fprintf(w, "  %s\n", group.Category.Name)
		for _, item := range group.Items {
			fmt.Fprintf(w, "    %s\n", formatItem(item))
		}
	}
}
