package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/manishpatil55/demo-product-page/internal/contact"
	"github.com/manishpatil55/demo-product-page/internal/db"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Inspect and update contact form submissions",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List submissions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		limit, _ := cmd.Flags().GetInt("limit")
		if status != "" && !contact.Status(status).Valid() {
			return fmt.Errorf("unknown status %q", status)
		}

		return withLeadStore(func(store *contact.Store) error {
			subs, err := store.List(context.Background(), contact.ListFilter{Status: contact.Status(status), Limit: limit})
			if err != nil {
				return err
			}
			if len(subs) == 0 {
				fmt.Println("No submissions.")
				return nil
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tRECEIVED\tSTATUS\tNAME\tPHONE\tEMAIL\tPAGE")
			for _, s := range subs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					s.ID, s.CreatedAt.Local().Format("2006-01-02 15:04"), s.Status, s.Name, s.Phone, s.Email, s.SourcePage)
			}
			return tw.Flush()
		})
	},
}

var leadsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one submission as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLeadStore(func(store *contact.Store) error {
			sub, err := store.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sub)
		})
	},
}

var leadsStatusCmd = &cobra.Command{
	Use:   "status <id> <new|contacted|closed>",
	Short: "Set the follow-up status of a submission",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := contact.Status(args[1])
		if !status.Valid() {
			return fmt.Errorf("unknown status %q", args[1])
		}
		return withLeadStore(func(store *contact.Store) error {
			if err := store.UpdateStatus(context.Background(), args[0], status); err != nil {
				return err
			}
			fmt.Printf("%s is now %s\n", args[0], status)
			return nil
		})
	},
}

func init() {
	leadsListCmd.Flags().String("status", "", "only show submissions with this status")
	leadsListCmd.Flags().Int("limit", 50, "maximum number of submissions")
	leadsCmd.AddCommand(leadsListCmd, leadsShowCmd, leadsStatusCmd)
	rootCmd.AddCommand(leadsCmd)
}

func withLeadStore(fn func(*contact.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	return fn(contact.NewStore(database))
}
