package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rajeshk/portfolio/client/config"
	"github.com/rajeshk/portfolio/client/poller"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Read and answer contact messages",
}

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contact messages",
	RunE:  runContactsList,
}

var contactsReplyCmd = &cobra.Command{
	Use:   "reply <id>",
	Short: "Reply to a contact message",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactsReply,
}

var contactsMarkCmd = &cobra.Command{
	Use:   "mark <id>",
	Short: "Mark a contact message as replied or unreplied",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactsMark,
}

var contactsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the inbox for new messages",
	Long: `Poll the contact inbox and print messages as they arrive.
Stops with Ctrl+C, or when the server rejects the session token.`,
	RunE: runContactsWatch,
}

func init() {
	contactsListCmd.Flags().Bool("unreplied", false, "show only messages without a reply")
	contactsReplyCmd.Flags().StringP("message", "m", "", "reply text")
	contactsMarkCmd.Flags().Bool("replied", true, "replied state to set")

	contactsCmd.AddCommand(contactsListCmd)
	contactsCmd.AddCommand(contactsReplyCmd)
	contactsCmd.AddCommand(contactsMarkCmd)
	contactsCmd.AddCommand(contactsWatchCmd)
}

func runContactsList(cmd *cobra.Command, args []string) error {
	log := newLogger()
	store, client, err := requireAuth(log)
	if err != nil {
		return err
	}
	defer store.Close()

	unrepliedOnly, _ := cmd.Flags().GetBool("unreplied")

	contacts, err := client.ListContacts(context.Background())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		if unrepliedOnly && c.Replied {
			continue
		}
		rows = append(rows, []string{
			c.ID.String(),
			c.Name,
			c.Email,
			truncate(c.Subject, 30),
			yesNo(c.Replied),
			formatTime(c.CreatedAt),
		})
	}
	renderTable([]string{"ID", "Name", "Email", "Subject", "Replied", "Received"}, rows)
	return nil
}

func runContactsReply(cmd *cobra.Command, args []string) error {
	log := newLogger()
	store, client, err := requireAuth(log)
	if err != nil {
		return err
	}
	defer store.Close()

	message, _ := cmd.Flags().GetString("message")
	if message == "" {
		return errors.New("reply message is required (-m)")
	}

	if err := client.ReplyContact(context.Background(), args[0], message); err != nil {
		return err
	}

	printSuccess("Reply sent for %s", args[0])
	return nil
}

func runContactsMark(cmd *cobra.Command, args []string) error {
	log := newLogger()
	store, client, err := requireAuth(log)
	if err != nil {
		return err
	}
	defer store.Close()

	replied, _ := cmd.Flags().GetBool("replied")

	if err := client.MarkContactReplied(context.Background(), args[0], replied); err != nil {
		return err
	}

	printSuccess("Contact %s marked replied=%s", args[0], yesNo(replied))
	return nil
}

func runContactsWatch(cmd *cobra.Command, args []string) error {
	log := newLogger()
	store, client, err := requireAuth(log)
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := config.Get()
	fmt.Printf("Watching contact inbox every %s, Ctrl+C to stop\n", cfg.Poll.Interval)

	watcher := poller.New(client, store, log, cfg.Poll.Interval, func(batch []models.ContactMessage) {
		for _, c := range batch {
			color.Cyan("[%s] %s <%s>", formatTime(c.CreatedAt), c.Name, c.Email)
			if c.Subject != "" {
				fmt.Printf("  Subject: %s\n", c.Subject)
			}
			fmt.Printf("  %s\n", c.Message)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
	}()

	return watcher.Run(ctx)
}
