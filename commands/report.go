package commands

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"hotel-orders/internal/app"
)

func ReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Seed when empty, then print billed customers, available rooms and revenue",
		RunE:  runReportCmd,
	}
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	a, _, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(a)

	return Report(cmd.Context(), a, cmd.OutOrStdout())
}

// Report seeds the store and writes the hotel summary to w. A failing
// section is logged and the next one still runs.
func Report(ctx context.Context, a *app.App, w io.Writer) error {
	fmt.Fprintln(w, "Starting Hotel Management System...")
	if err := a.Seeder.Seed(ctx); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n--- Customers with Bills ---")
	if customers, err := a.Customers.GetCustomersWithBills(ctx); err != nil {
		log.Printf("❌ listing customers with bills: %v", err)
	} else {
		for _, c := range customers {
			fmt.Fprintf(w, "Customer: %s | Phone: %s\n", c.Name, c.Phone)
		}
	}

	fmt.Fprintln(w, "\n--- Available Rooms ---")
	if rooms, err := a.Rooms.GetAvailableRooms(ctx); err != nil {
		log.Printf("❌ listing available rooms: %v", err)
	} else {
		for _, r := range rooms {
			fmt.Fprintf(w, "Room %d | %s\n", r.RoomNo, r.Location)
		}
	}

	fmt.Fprintln(w, "\n--- Total Revenue ---")
	if total, err := a.Billing.GetTotalRevenue(ctx); err != nil {
		log.Printf("❌ computing revenue: %v", err)
	} else {
		fmt.Fprintf(w, "%.2f\n", total)
	}
	return nil
}
