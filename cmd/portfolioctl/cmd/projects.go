package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rajeshk/portfolio/internal/pkg/models"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage portfolio projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE:  runProjectsList,
}

var projectsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project",
	RunE:  runProjectsAdd,
}

var projectsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsUpdate,
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsDelete,
}

func init() {
	projectsListCmd.Flags().String("category", "", "filter by category")
	projectsListCmd.Flags().Int("page", 1, "page number")
	projectsListCmd.Flags().Int("limit", 12, "items per page")

	for _, c := range []*cobra.Command{projectsAddCmd, projectsUpdateCmd} {
		c.Flags().String("title", "", "project title")
		c.Flags().String("description", "", "project description")
		c.Flags().String("category", "", "project category")
		c.Flags().String("tech", "", "comma separated technologies")
		c.Flags().String("image", "", "image URL")
		c.Flags().String("live", "", "live site URL")
		c.Flags().String("repo", "", "repository URL")
		c.Flags().Bool("featured", false, "feature on the landing page")
	}

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsAddCmd)
	projectsCmd.AddCommand(projectsUpdateCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
}

func projectFromFlags(cmd *cobra.Command) *models.Project {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	category, _ := cmd.Flags().GetString("category")
	tech, _ := cmd.Flags().GetString("tech")
	image, _ := cmd.Flags().GetString("image")
	live, _ := cmd.Flags().GetString("live")
	repo, _ := cmd.Flags().GetString("repo")
	featured, _ := cmd.Flags().GetBool("featured")

	return &models.Project{
		Title:        title,
		Description:  description,
		Category:     category,
		Technologies: tech,
		ImageURL:     image,
		LiveURL:      live,
		RepoURL:      repo,
		Featured:     featured,
	}
}

func runProjectsList(cmd *cobra.Command, args []string) error {
	log := newLogger()
	client := newAPIClient(log)

	category, _ := cmd.Flags().GetString("category")
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")

	result, err := client.ListProjects(context.Background(), category, page, limit)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(result.Projects))
	for _, p := range result.Projects {
		rows = append(rows, []string{
			p.ID.String(),
			p.Title,
			p.Category,
			truncate(p.Technologies, 40),
			yesNo(p.Featured),
			formatTime(p.CreatedAt),
		})
	}
	renderTable([]string{"ID", "Title", "Category", "Technologies", "Featured", "Created"}, rows)
	fmt.Printf("Page %d of %d total projects\n", result.Page, result.Total)
	return nil
}

func runProjectsAdd(cmd *cobra.Command, args []string) error {
	log := newLogger()
	store, client, err := requireAuth(log)
	if err != nil {
		return err
	}
	defer store.Close()

	project := projectFromFlags(cmd)
	if project.Title == "" {
		return errors.New("title is required")
	}

	if err := client.CreateProject(context.Background(), project); err != nil {
		return err
	}

	printSuccess("Project %q created", project.Title)
	return nil
}

func runProjectsUpdate(cmd *cobra.Command, args []string) error {
	log := newLogger()
	store, client, err := requireAuth(log)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid project ID: %w", err)
	}

	project := projectFromFlags(cmd)
	project.ID = id

	if err := client.UpdateProject(context.Background(), project); err != nil {
		return err
	}

	printSuccess("Project %s updated", args[0])
	return nil
}

func runProjectsDelete(cmd *cobra.Command, args []string) error {
	log := newLogger()
	store, client, err := requireAuth(log)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := client.DeleteProject(context.Background(), args[0]); err != nil {
		return err
	}

	printSuccess("Project %s deleted", args[0])
	return nil
}
