package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rajeshk/portfolio/client/api"
	"github.com/rajeshk/portfolio/client/config"
	"github.com/rajeshk/portfolio/client/guard"
	"github.com/rajeshk/portfolio/client/session"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Admin CLI for the portfolio backend",
	Long: `portfolioctl manages the portfolio site from the command line.

Public content (projects, gallery, testimonials) can be listed without a
session. Everything else requires logging in first; the admin login is a
two-step flow with a one-time password.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(cfgFile); err != nil {
			return fmt.Errorf("failed to initialize configuration: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.portfolioctl.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(testimonialsCmd)
	rootCmd.AddCommand(contactsCmd)
}

// newLogger builds the CLI logger, verbose only with --debug or config
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if debug || config.Get().Debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// openSession opens the local session database without reading it yet.
// Access checks trigger the read and observe the loading state.
func openSession(log *logrus.Logger) (*session.Store, error) {
	cfg := config.Get()
	store, err := session.NewStore(cfg.Session.DBPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	return store, nil
}

// newAPIClient builds an API client from the configured server URL
func newAPIClient(log *logrus.Logger) *api.Client {
	cfg := config.Get()
	httpClient := &http.Client{Timeout: cfg.Server.Timeout}
	return api.NewClient(cfg.Server.URL, httpClient, log)
}

// requireAuth opens the session, enforces the access check, and returns a
// client carrying the bearer token. Every admin command goes through here,
// so the check runs fresh on each invocation.
func requireAuth(log *logrus.Logger) (*session.Store, *api.Client, error) {
	store, err := openSession(log)
	if err != nil {
		return nil, nil, err
	}

	if err := guard.New(store).Require(); err != nil {
		store.Close()
		return nil, nil, err
	}

	client := newAPIClient(log)
	client.SetToken(store.Token())
	return store, client, nil
}
