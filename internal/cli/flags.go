package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// RunnerConfig holds the parsed command-line options for a headless run.
type RunnerConfig struct {
	Weight      string
	Height      string
	Age         string
	Sex         string // empty = default or profile value
	Activity    string // empty = default or profile value
	ProfilePath string
	Output      string // report base path; empty = no export
	Verbose     bool
	LogFormat   string // "text" or "json"
}

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config and prints help if no arguments or --help is provided.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{
		LogFormat: "text",
	}

	fs := flag.NewFlagSet("bmr-calculator", flag.ContinueOnError)
	fs.Usage = PrintUsage

	// Body measurements
	fs.StringVar(&cfg.Weight, "w", "", "Body weight in kg")
	fs.StringVar(&cfg.Weight, "weight", "", "Body weight in kg")
	fs.StringVar(&cfg.Height, "H", "", "Height in cm")
	fs.StringVar(&cfg.Height, "height", "", "Height in cm")
	fs.StringVar(&cfg.Age, "a", "", "Age in years")
	fs.StringVar(&cfg.Age, "age", "", "Age in years")
	fs.StringVar(&cfg.Sex, "s", "", "Sex: male or female")
	fs.StringVar(&cfg.Sex, "sex", "", "Sex: male or female")
	fs.StringVar(&cfg.Activity, "A", "", "Activity level")
	fs.StringVar(&cfg.Activity, "activity", "", "Activity level")
	fs.StringVar(&cfg.ProfilePath, "profile", "", "HCL profile with default values")

	// Output flags
	fs.StringVar(&cfg.Output, "o", "", "Report base path (writes .csv and .txt)")
	fs.StringVar(&cfg.Output, "output", "", "Report base path (writes .csv and .txt)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		fmt.Fprintf(os.Stderr, "Error: invalid log-format %q: must be text or json\n\n", cfg.LogFormat)
		PrintUsage()
		return nil, fmt.Errorf("invalid log-format %q", cfg.LogFormat)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %s\n\n", strings.Join(fs.Args(), " "))
		PrintUsage()
		return nil, fmt.Errorf("unexpected arguments")
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `BMR Calculator

Usage: bmr-calculator [flags]
       bmr-calculator help    (show this message)
       bmr-calculator         (no flags: open the window)

MEASUREMENTS:
  -w, -weight <kg>         Body weight in kilograms
  -H, -height <cm>         Height in centimetres
  -a, -age <years>         Age in years
  -s, -sex <male|female>   Sex (default: male)
  -A, -activity <level>    Activity level (default: moderate)
  -profile <file.hcl>      Load default values from an HCL profile

ACTIVITY LEVELS:
  sedentary   x1.2    little/no exercise
  light       x1.375  light activity 1–3 days/week
  moderate    x1.55   moderate activity 3–5 days/week
  active      x1.725  heavy activity 6–7 days/week
  extreme     x1.9    professional athlete level

OUTPUT:
  -o, -output <base>       Save report to <base>_DD.MM.YYYY.csv and .txt
  -v, -verbose             Verbose output
  -log-format <text|json>  Log format (default: text)

EXAMPLES:
  # Male, 70 kg, 175 cm, 30 years, moderately active
  bmr-calculator -w 70 -H 175 -a 30

  # Female, sedentary, with a saved report
  bmr-calculator -w 60 -H 165 -a 25 -s female -A sedentary -o reports/bmr

  # Use a profile and override the weight
  bmr-calculator -profile me.hcl -w 68

`)
}
