package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rajeshk/portfolio/internal/pkg/models"
)

var testimonialsCmd = &cobra.Command{
	Use:   "testimonials",
	Short: "Moderate visitor testimonials",
}

var testimonialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List testimonials",
	RunE:  runTestimonialsList,
}

var testimonialsApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a testimonial for public display",
	Args:  cobra.ExactArgs(1),
	RunE:  runTestimonialsApprove,
}

var testimonialsRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a testimonial",
	Args:  cobra.ExactArgs(1),
	RunE:  runTestimonialsReject,
}

var testimonialsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a testimonial",
	Args:  cobra.ExactArgs(1),
	RunE:  runTestimonialsDelete,
}

func init() {
	testimonialsListCmd.Flags().Bool("all", false, "include pending and rejected (requires login)")

	testimonialsCmd.AddCommand(testimonialsListCmd)
	testimonialsCmd.AddCommand(testimonialsApproveCmd)
	testimonialsCmd.AddCommand(testimonialsRejectCmd)
	testimonialsCmd.AddCommand(testimonialsDeleteCmd)
}

func runTestimonialsList(cmd *cobra.Command, args []string) error {
	log := newLogger()
	all, _ := cmd.Flags().GetBool("all")

	var client = newAPIClient(log)
	if all {
		store, authed, err := requireAuth(log)
		if err != nil {
			return err
		}
		defer store.Close()
		client = authed
	}

	testimonials, err := client.ListTestimonials(context.Background(), all)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(testimonials))
	for _, item := range testimonials {
		rows = append(rows, []string{
			item.ID.String(),
			item.Name,
			item.Role,
			strconv.Itoa(item.Rating),
			item.Status,
			truncate(item.Message, 40),
		})
	}
	renderTable([]string{"ID", "Name", "Role", "Rating", "Status", "Message"}, rows)
	return nil
}

func setTestimonialStatus(id, status string) error {
	log := newLogger()
	store, client, err := requireAuth(log)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := client.UpdateTestimonialStatus(context.Background(), id, status); err != nil {
		return err
	}

	printSuccess("Testimonial %s marked %s", id, status)
	return nil
}

func runTestimonialsApprove(cmd *cobra.Command, args []string) error {
	return setTestimonialStatus(args[0], models.TestimonialApproved)
}

func runTestimonialsReject(cmd *cobra.Command, args []string) error {
	return setTestimonialStatus(args[0], models.TestimonialRejected)
}

func runTestimonialsDelete(cmd *cobra.Command, args []string) error {
	log := newLogger()
	store, client, err := requireAuth(log)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := client.DeleteTestimonial(context.Background(), args[0]); err != nil {
		return err
	}

	printSuccess("Testimonial %s deleted", args[0])
	return nil
}
