package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ninebudget/ninebudget/model"
)

var institutionTypes = []model.InstitutionType{
	model.InstitutionTypeBank,
	model.InstitutionTypeCreditCard,
	model.InstitutionTypeInvestment,
	model.InstitutionTypeLoan,
}

func parseInstitutionType(s string) (model.InstitutionType, error) {
	for _, t := range institutionTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown institution type %q", s)
}

func (r *Runner) institutionsView() *cli.Command {
	return &cli.Command{
		Name:  "institutions",
		Usage: "list financial institutions",
		Action: func(c *cli.Context) error {
			api, err := r.Client()
			if err != nil {
				return err
			}
			institutions, err := api.Institutions.List(c.Context)
			if err != nil {
				return err
			}
			r.dump("institutions", institutions)
			return writeInstitutions(r.Out, institutions)
		},
	}
}

func (r *Runner) institutionCreateView() *cli.Command {
	return &cli.Command{
		Name:  "institution-create",
		Usage: "register a financial institution",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "type", Value: string(model.InstitutionTypeBank), Usage: "BANK, CREDIT_CARD, INVESTMENT or LOAN"},
			&cli.BoolFlag{Name: "active", Value: true},
			&cli.StringFlag{Name: "balance", Usage: "opening balance"},
		},
		Action: func(c *cli.Context) error {
			kind, err := parseInstitutionType(c.String("type"))
			if err != nil {
				return err
			}
			institution := model.Institution{
				Name:   model.String(c.String("name")),
				Active: c.Bool("active"),
				Type:   &kind,
			}
			if raw := c.String("balance"); raw != "" {
				if institution.Balance, err = model.AmountFromString(raw); err != nil {
					return fmt.Errorf("invalid balance: %w", err)
				}
			}

			api, err := r.Client()
			if err != nil {
				return err
			}
			created, err := api.Institutions.Create(c.Context, institution)
			if err != nil {
				return err
			}
			r.dump("institution", created)
			id := "-"
			if created.ID != nil {
				id = created.ID.String()
			}
			r.printf("Created institution %s\n", id)
			return nil
		},
	}
}
