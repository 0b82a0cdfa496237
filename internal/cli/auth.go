package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/ninebudget/ninebudget/model"
)

func (r *Runner) loginView() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "sign in and store the session token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Required: true},
			&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"NINEBUDGET_PASSWORD"}},
		},
		Action: func(c *cli.Context) error {
			api, err := r.Client()
			if err != nil {
				return err
			}
			credential := model.Credential{Username: c.String("username"), Password: c.String("password")}
			if err := api.Auth.Login(c.Context, credential); err != nil {
				return err
			}
			r.Logger.WithField("username", credential.Username).Debug("logged in")
			r.printf("Logged in as %s\n", credential.Username)
			return nil
		},
	}
}

func (r *Runner) logoutView() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "drop the stored session",
		Action: func(c *cli.Context) error {
			api, err := r.Client()
			if err != nil {
				return err
			}
			api.Auth.Logout()
			r.printf("Logged out\n")
			return nil
		},
	}
}

func (r *Runner) forgetPasswordView() *cli.Command {
	return &cli.Command{
		Name:  "forget-password",
		Usage: "request a password reset email",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
		},
		Action: func(c *cli.Context) error {
			api, err := r.Client()
			if err != nil {
				return err
			}
			if err := api.Users.RequestPasswordReset(c.Context, c.String("email")); err != nil {
				return err
			}
			r.printf("Check %s for a reset key\n", c.String("email"))
			return nil
		},
	}
}

func (r *Runner) resetPasswordView() *cli.Command {
	return &cli.Command{
		Name:  "reset-password",
		Usage: "set a new password using a reset key",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "key", Required: true},
			&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"NINEBUDGET_NEW_PASSWORD"}},
		},
		Action: func(c *cli.Context) error {
			api, err := r.Client()
			if err != nil {
				return err
			}
			if err := api.Users.CompletePasswordReset(c.Context, c.String("key"), c.String("password")); err != nil {
				return err
			}
			r.printf("Password updated\n")
			return nil
		},
	}
}
