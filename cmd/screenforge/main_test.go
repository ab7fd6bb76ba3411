package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/mrsinham/screenforge/internal/document"
	"github.com/xuri/excelize/v2"
)

// testContext holds state for a single scenario
type testContext struct {
	tmpDir   string
	exitCode int
	output   string
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	tc := &testContext{}

	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tmpDir, err := os.MkdirTemp("", "screenforge-e2e-*")
		if err != nil {
			return ctx, err
		}
		tc.tmpDir = tmpDir
		tc.exitCode = 0
		tc.output = ""
		return ctx, nil
	})

	sc.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc.tmpDir != "" {
			os.RemoveAll(tc.tmpDir)
		}
		return ctx, nil
	})

	sc.Step(`^I run screenforge with "([^"]*)"$`, tc.iRunScreenforgeWith)
	sc.Step(`^the exit code should be (\d+)$`, tc.theExitCodeShouldBe)
	sc.Step(`^the output should contain "([^"]*)"$`, tc.theOutputShouldContain)
	sc.Step(`^the output should not contain "([^"]*)"$`, tc.theOutputShouldNotContain)
	sc.Step(`^"([^"]*)" should exist$`, tc.shouldExist)
	sc.Step(`^"([^"]*)" should not exist$`, tc.shouldNotExist)
	sc.Step(`^a file "([^"]*)" containing:$`, tc.aFileContaining)
	sc.Step(`^a workbook "([^"]*)" with rows:$`, tc.aWorkbookWithRows)
	sc.Step(`^the document "([^"]*)" should contain "([^"]*)"$`, tc.theDocumentShouldContain)
	sc.Step(`^the document "([^"]*)" should have a table of (\d+) rows$`, tc.theDocumentShouldHaveTable)
}

func (tc *testContext) path(p string) string {
	return strings.ReplaceAll(p, "{tmpdir}", tc.tmpDir)
}

func (tc *testContext) iRunScreenforgeWith(args string) error {
	var output bytes.Buffer
	tc.exitCode = run(splitArgs(tc.path(args)), &output, &output)
	tc.output = output.String()
	return nil
}

func (tc *testContext) theExitCodeShouldBe(expected int) error {
	if tc.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d\nOutput:\n%s", expected, tc.exitCode, tc.output)
	}
	return nil
}

func (tc *testContext) theOutputShouldContain(expected string) error {
	if !strings.Contains(tc.output, tc.path(expected)) {
		return fmt.Errorf("output does not contain %q\nOutput:\n%s", expected, tc.output)
	}
	return nil
}

func (tc *testContext) theOutputShouldNotContain(unexpected string) error {
	if strings.Contains(tc.output, tc.path(unexpected)) {
		return fmt.Errorf("output contains %q\nOutput:\n%s", unexpected, tc.output)
	}
	return nil
}

func (tc *testContext) shouldExist(path string) error {
	path = tc.path(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	return nil
}

func (tc *testContext) shouldNotExist(path string) error {
	path = tc.path(path)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("path exists: %s", path)
	}
	return nil
}

func (tc *testContext) aFileContaining(path string, content *godog.DocString) error {
	path = tc.path(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content.Content), 0o644)
}

func (tc *testContext) aWorkbookWithRows(path string, rows *godog.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows.Rows {
		values := make([]any, len(row.Cells))
		for j, c := range row.Cells {
			values[j] = c.Value
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Sheet1", cell, &values); err != nil {
			return err
		}
	}
	return f.SaveAs(tc.path(path))
}

func (tc *testContext) theDocumentShouldContain(path, expected string) error {
	text, err := document.ExtractText(tc.path(path))
	if err != nil {
		return err
	}
	if !strings.Contains(text, expected) {
		return fmt.Errorf("document does not contain %q\nText:\n%s", expected, text)
	}
	return nil
}

func (tc *testContext) theDocumentShouldHaveTable(path string, rows int) error {
	tables, err := document.ReadTables(tc.path(path))
	if err != nil {
		return err
	}
	if len(tables) != 1 {
		return fmt.Errorf("expected 1 table, found %d", len(tables))
	}
	if len(tables[0]) != rows {
		return fmt.Errorf("expected %d rows, found %d", rows, len(tables[0]))
	}
	return nil
}

// splitArgs splits a command line string into arguments. Single quotes group
// words containing spaces.
func splitArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false

	for _, r := range s {
		switch {
		case r == '\'':
			inQuote = !inQuote
		case r == ' ' && !inQuote:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

func TestSplitArgs(t *testing.T) {
	got := splitArgs("generate --name 'Иван Петров' --id 1")
	want := []string{"generate", "--name", "Иван Петров", "--id", "1"}
	if len(got) != len(want) {
		t.Fatalf("splitArgs() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg %d = %q, want %q", i, got[i], want[i])
		}
	}
}
