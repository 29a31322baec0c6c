package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/allisson/oscli/internal/schema"
)

// RunCheckCommands scans the command registry under root and reports every
// structural violation of the namespace group. It fails when any violation
// is found.
func RunCheckCommands(
	root *cli.Command,
	namespace string,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("checking command registry", slog.String("namespace", namespace))

	report, err := schema.NewValidator().ValidateTree(root, namespace)
	if err != nil {
		return err
	}

	if format == "json" {
		if err := writeJSON(writer, report); err != nil {
			return err
		}
	} else {
		outputCheckText(writer, report)
	}

	logger.Info("command registry checked",
		slog.Int("commands", report.Commands),
		slog.Int("violations", len(report.Violations)),
	)
	return report.Err()
}

func outputCheckText(w io.Writer, report *schema.Report) {
	_, _ = fmt.Fprintf(w, "Checked %d commands\n", report.Commands)
	if report.OK() {
		_, _ = fmt.Fprintln(w, "No violations found")
		return
	}
	for _, category := range []schema.Category{
		schema.AliasInconsistency,
		schema.ForbiddenAliasPresent,
		schema.RequiredAliasMissing,
		schema.RegistryDrift,
	} {
		violations := report.ByCategory(category)
		if len(violations) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "\n%s (%d):\n", category, len(violations))
		for _, v := range violations {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", v.Command, v.Detail)
		}
	}
}
