package commands

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"hotel-orders/internal/app"
	"hotel-orders/models"
)

func OrdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Walk through create, read, update and delete on clients and commandes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer closeApp(a)

			Orders(cmd.Context(), a, cmd.OutOrStdout(), time.Now())
			return nil
		},
	}
}

// Orders runs the client/commande walkthrough against the store. Each step
// reports its own failure and the walkthrough moves on.
func Orders(ctx context.Context, a *app.App, w io.Writer, today time.Time) {
	fmt.Fprintln(w, "=== Client / Commande walkthrough ===")

	fmt.Fprintln(w, "\n--- CREATE ---")
	client := models.NewClient("Imane El Amrani", "imane.elamrani@emsi.ma")
	first := models.NewCommande(today, decimal.RequireFromString("550.00"))
	client.AddCommande(first)
	client.AddCommande(models.NewCommande(today.AddDate(0, 0, 2), decimal.RequireFromString("1200.00")))
	if err := a.Clients.Register(ctx, client); err != nil {
		log.Printf("❌ create failed: %v", err)
		fmt.Fprintf(w, "✗ Create failed: %v\n", err)
		return
	}
	fmt.Fprintf(w, "✓ Client created with ID: %d\n", client.ID)

	fmt.Fprintln(w, "\n--- READ ---")
	if found, err := a.Clients.Get(ctx, client.ID); err != nil {
		fmt.Fprintf(w, "✗ No client with ID=%d\n", client.ID)
	} else {
		fmt.Fprintf(w, "✓ Client found: %s\n", found)
	}

	fmt.Fprintln(w, "\n--- READ with COMMANDES ---")
	if found, err := a.Clients.Get(ctx, client.ID); err == nil {
		fmt.Fprintf(w, "✓ Client: %s\n", found.Name)
		fmt.Fprintln(w, "  Commandes:")
		for _, cmd := range found.Commandes {
			fmt.Fprintf(w, "    - %s\n", cmd)
		}
		fmt.Fprintf(w, "  Total: %s\n", found.TotalAmount().StringFixed(2))
	}

	fmt.Fprintln(w, "\n--- UPDATE ---")
	const newEmail = "nouveau.email@emsi.ma"
	if old, err := a.Clients.ChangeEmail(ctx, client.ID, newEmail); err != nil {
		fmt.Fprintf(w, "✗ Update failed: %v\n", err)
	} else {
		fmt.Fprintf(w, "✓ Email changed: %s → %s\n", old, newEmail)
	}

	fmt.Fprintln(w, "\n--- DELETE ---")
	if err := a.Clients.RemoveCommande(ctx, first.ID); err != nil {
		fmt.Fprintf(w, "✗ Delete failed: %v\n", err)
	} else {
		fmt.Fprintf(w, "✓ Commande deleted: %d\n", first.ID)
	}

	fmt.Fprintln(w, "\n=== Done ===")
}
