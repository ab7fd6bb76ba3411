package main

import (
	"fmt"
	"io"

	"github.com/mrsinham/screenforge/internal/config"
	"github.com/mrsinham/screenforge/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries what every command needs once flags and config are resolved.
type app struct {
	configPath string
	cfg        *config.Config
	log        *logrus.Logger
	errOut     io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{errOut: errOut}

	root := &cobra.Command{
		Use:   "screenforge",
		Short: "Produce clinical-trial screening notes as Word documents",
		Long: `screenforge renders patient screening records into a Bulgarian visit note
and saves it as a .docx file named after the patient ID. It can also save
tables, read spreadsheet columns and extract text from existing documents.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Configuration file (default: ./screenforge.yaml if present)")
	flags.String("output-dir", "", "Directory for generated documents (default: current directory)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text, json")

	root.AddCommand(
		newGenerateCmd(a),
		newPreviewCmd(a),
		newTableCmd(a),
		newReadColumnCmd(a),
		newFillCmd(a),
		newSampleCmd(a),
		newWizardCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads configuration and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, a.errOut)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.log.WithField("output_dir", cfg.OutputDir).Debug("Configuration loaded")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// version needs no configuration
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "screenforge %s\n", version)
		},
	}
}
