package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"bmr-calculator/internal/config"
	"bmr-calculator/internal/export"
	"bmr-calculator/internal/format"
	"bmr-calculator/internal/metabolic"
	"bmr-calculator/internal/model"
)

// ExitError carries a process exit code. An empty Message means the error
// was already shown to the user.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Message
}

// printReporter shows session outcomes on the terminal.
type printReporter struct {
	out    io.Writer
	errOut io.Writer
}

func (p *printReporter) ReportFailure(err error) {
	fmt.Fprintln(p.errOut, metabolic.UserMessage(err))
}

func (p *printReporter) ReportResult(c *model.Calculation) {
	fmt.Fprintln(p.out, format.FormatResult(c))
}

// BuildFields resolves the form state from defaults, the profile and flags,
// in that order of precedence (flags win).
func BuildFields(cfg RunnerConfig) (model.InputFields, error) {
	fields := model.DefaultInputFields()

	if cfg.ProfilePath != "" {
		p, err := config.LoadProfile(cfg.ProfilePath)
		if err != nil {
			return fields, err
		}
		if err := p.Apply(&fields); err != nil {
			return fields, err
		}
	}

	if cfg.Weight != "" {
		fields.Weight = cfg.Weight
	}
	if cfg.Height != "" {
		fields.Height = cfg.Height
	}
	if cfg.Age != "" {
		fields.Age = cfg.Age
	}
	if cfg.Sex != "" {
		sex, err := model.ParseSex(cfg.Sex)
		if err != nil {
			return fields, err
		}
		fields.Sex = sex
	}
	if cfg.Activity != "" {
		level, err := model.ParseActivityLevel(cfg.Activity)
		if err != nil {
			return fields, err
		}
		fields.ActivityLevel = level
	}
	return fields, nil
}

// Run performs one calculation and prints it. Validation failures are
// printed to errOut and returned as an *ExitError with code 1.
func Run(cfg RunnerConfig, out, errOut io.Writer, logger *slog.Logger) error {
	fields, err := BuildFields(cfg)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	session := metabolic.NewSession(&printReporter{out: out, errOut: errOut}, metabolic.WithLogger(logger))
	session.Fields = fields

	c, err := session.Calculate()
	if err != nil {
		var verr *metabolic.ValidationError
		if errors.As(err, &verr) {
			logger.Debug("calculation rejected", "field", verr.Field, "value", verr.Value)
			return &ExitError{Code: 1}
		}
		return err
	}

	if cfg.Output == "" {
		return nil
	}

	base := export.BuildBase(cfg.Output, c.Timestamp)
	csvPath, txtPath, err := export.WriteReport(base, c)
	if err != nil {
		return fmt.Errorf("export report: %w", err)
	}
	logger.Info("report written", "csv", csvPath, "txt", txtPath)
	fmt.Fprintf(out, "Saved report to %s and %s\n", csvPath, txtPath)
	return nil
}
