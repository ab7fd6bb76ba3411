package main

import (
	"fmt"
	"io"

	"github.com/mrsinham/screenforge/internal/document"
	"github.com/mrsinham/screenforge/internal/screening"
	"github.com/mrsinham/screenforge/internal/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		rec     screening.Record
		fields  []string
		from    string
		variant string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the screening note and save it as a Word document",
		Example: `  screenforge generate --name "Иван Петров Иванов" --dob 14.03.1966 --age 58 \
    --doctor "Д-р Мария Георгиева" --coordinator "Гергана Тодорова" --time 09:30 --id 1234567890
  screenforge generate --field dob=14.03.1966 --field id=1234567890 --variant rescreening
  screenforge generate --from records.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := util.ParseFieldFlags(fields)
			if err != nil {
				return err
			}

			records := []screening.Record{rec}
			if from != "" {
				f, err := screening.LoadFromYAML(from)
				if err != nil {
					return err
				}
				records = f.Records
				if variant == "" {
					variant = f.Variant
				}
			}
			for i := range records {
				records[i].Apply(parsed)
			}

			gen, err := a.generator()
			if err != nil {
				return err
			}
			for _, r := range records {
				if err := a.generateOne(cmd.OutOrStdout(), gen, variant, r); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&rec.FullName, "name", "", "Patient full name")
	flags.StringVar(&rec.DateOfBirth, "dob", "", "Date of birth")
	flags.StringVar(&rec.DoctorName, "doctor", "", "Doctor's name")
	flags.StringVar(&rec.CoordinatorName, "coordinator", "", "Coordinator's name")
	flags.StringVar(&rec.ScreeningTime, "time", "", "Screening time")
	flags.StringVar(&rec.Age, "age", "", "Patient age")
	flags.StringVar(&rec.PatientID, "id", "", "Patient ID, also names the output file")
	flags.StringArrayVar(&fields, "field", nil, "Set a field: 'key=value' (repeatable, accepts aliases)")
	flags.StringVar(&from, "from", "", "Render every record of a YAML records file")
	flags.StringVar(&variant, "variant", "", "Template variant: screening, rescreening")
	flags.String("template", "", "Custom template file")

	return cmd
}

// generateOne renders rec, prints the text and saves it. A record without a
// patient ID is printed but not saved.
func (a *app) generateOne(out io.Writer, gen *documentGenerator, variant string, rec screening.Record) error {
	log := a.log.WithField("patient_id", rec.PatientID)
	for _, key := range rec.Missing() {
		if key != util.FieldPatientID {
			log.Warnf("Field %s is empty", key)
		}
	}

	text, err := gen.Preview(variant, rec)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, text)

	if rec.PatientID == "" {
		a.log.Warn("Patient ID is empty, document not saved")
		return nil
	}

	path, err := gen.writer.SaveText(rec.PatientID, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Document saved as %s\n", path)
	return nil
}

// documentGenerator renders with the configured templates and writes with
// the configured writer. It also backs the wizard.
type documentGenerator struct {
	app       *app
	writer    *document.Writer
	renderers map[string]*screening.Renderer
}

func (a *app) generator() (*documentGenerator, error) {
	w, err := a.cfg.NewWriter(a.log)
	if err != nil {
		return nil, err
	}
	return &documentGenerator{app: a, writer: w, renderers: map[string]*screening.Renderer{}}, nil
}

func (g *documentGenerator) renderer(variant string) (*screening.Renderer, error) {
	if r, ok := g.renderers[variant]; ok {
		return r, nil
	}
	r, err := g.app.cfg.NewRenderer(variant)
	if err != nil {
		return nil, err
	}
	meta := r.Metadata()
	g.app.log.WithFields(logrus.Fields{
		"variant":    r.Variant(),
		"protocol":   meta.Protocol,
		"site":       meta.Site,
		"visit_date": meta.VisitDate,
	}).Debug("Template selected")
	g.renderers[variant] = r
	return r, nil
}

// Preview returns the note text for rec.
func (g *documentGenerator) Preview(variant string, rec screening.Record) (string, error) {
	r, err := g.renderer(variant)
	if err != nil {
		return "", err
	}
	return r.Render(rec)
}

// Save renders rec and writes it, named after the patient ID.
func (g *documentGenerator) Save(variant string, rec screening.Record) (string, error) {
	text, err := g.Preview(variant, rec)
	if err != nil {
		return "", err
	}
	return g.writer.SaveText(rec.PatientID, text)
}
