package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"idcard/card"
	"idcard/client"
)

var (
	loginUsername string
	loginPassword string
	cardRefresh   bool
	cardPrint     bool
)

var errNotLoggedIn = errors.New("not logged in, run `idcard login` first")

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and keep the session for 24 hours",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, password := loginUsername, loginPassword
		if username == "" || password == "" {
			in := bufio.NewReader(cmd.InOrStdin())
			if username == "" {
				username = prompt(cmd, in, "Username: ")
			}
			if password == "" {
				password = prompt(cmd, in, "Password: ")
			}
		}

		if problems := client.ValidateCredentials(username, password); len(problems) > 0 {
			return errors.New(strings.Join(problems, "; "))
		}

		result, err := api.Login(username, password)
		if err != nil {
			return err
		}
		if err := store.Save(result.Employee); err != nil {
			return err
		}

		logger.Debug("logged in", zap.String("username", result.Employee.Username))
		fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s\n", card.FullName(result.Employee))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in employee and session time left",
	RunE: func(cmd *cobra.Command, args []string) error {
		employee, ok := store.CurrentEmployee()
		if !ok {
			return errNotLoggedIn
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s), session expires in %d minutes\n",
			card.FullName(employee), employee.Username, store.TimeRemaining())
		return nil
	},
}

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Show your digital ID card",
	RunE: func(cmd *cobra.Command, args []string) error {
		employee, ok := store.CurrentEmployee()
		if !ok {
			return errNotLoggedIn
		}

		if cardRefresh {
			fresh, err := api.Employee(employee.Username)
			if err != nil {
				return err
			}
			employee = fresh
		}

		if cardPrint {
			return card.Print(employee)
		}
		fmt.Fprintln(cmd.OutOrStdout(), card.Render(employee))
		return nil
	},
}

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "List employees known to the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		employees, err := api.Employees()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "USERNAME\tEMPLOYEE NO\tNAME\tPOSITION\tOFFICE")
		for _, e := range employees {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Username, e.EmployeeNo, card.FullName(e), e.Position, e.Office)
		}
		return w.Flush()
	},
}

func prompt(cmd *cobra.Command, in *bufio.Reader, label string) string {
	fmt.Fprint(cmd.OutOrStdout(), label)
	line, _ := in.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}
