package main

import (
	"github.com/mrsinham/screenforge/cmd/screenforge/wizard"
	"github.com/spf13/cobra"
)

func newWizardCmd(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Fill in a screening record interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := a.generator()
			if err != nil {
				return err
			}
			return wizard.Run(from, a.cfg.Template.Variant, gen)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Pre-fill the form from a YAML record file")
	return cmd
}
