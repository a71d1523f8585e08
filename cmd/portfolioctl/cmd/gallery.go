package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajeshk/portfolio/internal/pkg/models"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Manage gallery images",
}

var galleryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List gallery items",
	RunE:  runGalleryList,
}

var galleryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a gallery item",
	RunE:  runGalleryAdd,
}

var galleryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a gallery item",
	Args:  cobra.ExactArgs(1),
	RunE:  runGalleryDelete,
}

func init() {
	galleryListCmd.Flags().String("category", "", "filter by category")
	galleryListCmd.Flags().Int("page", 1, "page number")
	galleryListCmd.Flags().Int("limit", 12, "items per page")

	galleryAddCmd.Flags().String("title", "", "item title")
	galleryAddCmd.Flags().String("description", "", "item description")
	galleryAddCmd.Flags().String("category", "", "item category")
	galleryAddCmd.Flags().String("image", "", "image URL")

	galleryCmd.AddCommand(galleryListCmd)
	galleryCmd.AddCommand(galleryAddCmd)
	galleryCmd.AddCommand(galleryDeleteCmd)
}

func runGalleryList(cmd *cobra.Command, args []string) error {
	log := newLogger()
	client := newAPIClient(log)

	category, _ := cmd.Flags().GetString("category")
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")

	result, err := client.ListGallery(context.Background(), category, page, limit)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(result.Items))
	for _, item := range result.Items {
		rows = append(rows, []string{
			item.ID.String(),
			item.Title,
			item.Category,
			truncate(item.ImageURL, 50),
			formatTime(item.CreatedAt),
		})
	}
	renderTable([]string{"ID", "Title", "Category", "Image", "Created"}, rows)
	fmt.Printf("Page %d of %d total items\n", result.Page, result.Total)
	return nil
}

func runGalleryAdd(cmd *cobra.Command, args []string) error {
	log := newLogger()
	store, client, err := requireAuth(log)
	if err != nil {
		return err
	}
	defer store.Close()

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	category, _ := cmd.Flags().GetString("category")
	image, _ := cmd.Flags().GetString("image")

	if title == "" || image == "" {
		return errors.New("title and image are required")
	}

	item := &models.GalleryItem{
		Title:       title,
		Description: description,
		Category:    category,
		ImageURL:    image,
	}
	if err := client.CreateGalleryItem(context.Background(), item); err != nil {
		return err
	}

	printSuccess("Gallery item %q created", title)
	return nil
}

func runGalleryDelete(cmd *cobra.Command, args []string) error {
	log := newLogger()
	store, client, err := requireAuth(log)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := client.DeleteGalleryItem(context.Background(), args[0]); err != nil {
		return err
	}

	printSuccess("Gallery item %s deleted", args[0])
	return nil
}
