package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rajeshk/portfolio/client/flow"
	"github.com/rajeshk/portfolio/client/guard"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the portfolio backend",
	Long: `Authenticate with the portfolio backend.

Login is a two-step flow: after the username and password are accepted, a
one-time password is sent to the admin email address. The OTP expires after
30 seconds; type 'back' at the OTP prompt to re-enter credentials, or press
enter on an empty line to abort.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the local session",
	RunE:  runLogout,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE:  runStatus,
}

func init() {
	loginCmd.Flags().StringP("username", "u", "", "admin username")
	loginCmd.Flags().StringP("password", "p", "", "admin password (prompted when omitted)")
}

func promptLine(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	log := newLogger()

	store, err := openSession(log)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Load(); err != nil {
		return err
	}
	if admin := store.Admin(); admin != nil {
		fmt.Printf("Already logged in as %s; the new session will replace it.\n", admin.Username)
	}

	client := newAPIClient(log)
	loginFlow := flow.NewLoginFlow(client, store, log)
	reader := bufio.NewReader(os.Stdin)
	ctx := context.Background()

	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	for {
		// Credential step
		if username == "" {
			if username, err = promptLine(reader, "Username: "); err != nil {
				return err
			}
		}
		if password == "" {
			if password, err = promptPassword("Password: "); err != nil {
				return err
			}
		}

		if err := loginFlow.SubmitCredentials(ctx, username, password); err != nil {
			printError("%s", err)
			username, password = "", ""
			continue
		}

		fmt.Println("An OTP has been sent to your email. It expires in 30 seconds.")

		// OTP step
		back := false
		for {
			otp, err := promptLine(reader, "OTP: ")
			if err != nil {
				return err
			}
			if otp == "" {
				loginFlow.Close()
				return errors.New("login aborted")
			}
			if otp == "back" {
				if err := loginFlow.Back(); err != nil {
					return err
				}
				password = ""
				back = true
				break
			}

			if err := loginFlow.SubmitOTP(ctx, otp); err != nil {
				printError("%s", err)
				continue
			}
			break
		}
		if back {
			continue
		}

		printSuccess("Logged in as %s", store.Admin().Name)
		return nil
	}
}

func runLogout(cmd *cobra.Command, args []string) error {
	log := newLogger()

	store, err := openSession(log)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Load(); err != nil {
		return err
	}
	if store.Token() == "" {
		fmt.Println("Not logged in")
		return nil
	}

	if err := store.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	printSuccess("Logged out, local session cleared")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	log := newLogger()

	store, err := openSession(log)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Load(); err != nil {
		return err
	}

	switch guard.New(store).Check() {
	case guard.Allow:
		admin := store.Admin()
		rows := [][]string{
			{"Status", "logged in"},
			{"Name", admin.Name},
			{"Username", admin.Username},
			{"Email", admin.Email},
		}
		renderTable([]string{"Property", "Value"}, rows)
	default:
		fmt.Println("Status: not logged in")
	}
	return nil
}
