package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skillforge/skillcheck/report"
	"github.com/skillforge/skillcheck/skill"
	"github.com/skillforge/skillcheck/validator"
	"github.com/skillforge/skillcheck/web"
)

func validateCmd(opts *cliOptions) *cobra.Command {
	var (
		skillName   string
		validateAll bool
		pageURL     string
		strict      bool
		format      string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate skill content for correctness",
		Long: `Validate skill content for correctness.

Checks:
- Python syntax in code blocks
- Known anti-patterns (Pydantic for state, etc.)
- Deprecated APIs
- Missing required sections`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, err := setup(opts)
			if err != nil {
				return err
			}
			if strict {
				cfg.Validate.Strict = true
			}
			if format != "" {
				cfg.Report.Format = format
			}

			var results []*validator.Result
			switch {
			case validateAll:
				results, err = engine.ValidateAll(cfg.Skills.Dir)
				if err != nil {
					return err
				}
			case pageURL != "":
				doc, err := web.FetchDocument(cmd.Context(), pageURL)
				if err != nil {
					return err
				}
				results = []*validator.Result{engine.Validate(doc)}
			case skillName != "":
				path := filepath.Join(cfg.Skills.Dir, skillName, skill.DocumentFilename)
				if _, err := os.Stat(path); err != nil {
					fmt.Fprintf(os.Stderr, "Skill not found: %s\n", skillName)
					if names, nerr := skill.Names(cfg.Skills.Dir); nerr == nil && len(names) > 0 {
						fmt.Fprintf(os.Stderr, "Available skills: %s\n", strings.Join(names, ", "))
					}
					os.Exit(1)
				}
				res, err := engine.ValidateFile(path)
				if err != nil {
					return err
				}
				results = []*validator.Result{res}
			default:
				return fmt.Errorf("specify --skill NAME, --all, or --url URL")
			}

			summary := report.NewSummary(results)

			if cfg.Report.Format == "json" {
				out, err := summary.JSON()
				if err != nil {
					return err
				}
				fmt.Println(out)
			} else {
				for _, res := range results {
					fmt.Println(report.FormatResult(res))
				}
				fmt.Println(summary.Format())
			}

			switch {
			case summary.Errors > 0:
				fmt.Println("\nFAILED - fix errors above")
				os.Exit(1)
			case cfg.Validate.Strict && summary.Warnings > 0:
				fmt.Println("\nFAILED (strict mode) - fix warnings above")
				os.Exit(1)
			default:
				fmt.Println("\nPASSED")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&skillName, "skill", "", "Skill to validate (e.g., langgraph)")
	cmd.Flags().BoolVar(&validateAll, "all", false, "Validate all skills")
	cmd.Flags().StringVar(&pageURL, "url", "", "Validate a remote documentation page")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors")
	cmd.Flags().StringVar(&format, "format", "", "Output format (text, json)")

	return cmd
}

func quickCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "quick",
		Short: "Quick validation of all skills - just show pass/fail",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, err := setup(opts)
			if err != nil {
				return err
			}

			results, err := engine.ValidateAll(cfg.Skills.Dir)
			if err != nil {
				return err
			}

			fmt.Println("Quick Validation")
			fmt.Println(strings.Repeat("=", 40))

			pass := color.New(color.FgGreen).Sprint("✓")
			fail := color.New(color.FgRed).Sprint("✗")

			allPassed := true
			for _, res := range results {
				status := "PASS"
				icon := pass
				if !res.Passed() {
					status = "FAIL"
					icon = fail
					allPassed = false
				}

				details := ""
				if n := res.ErrorCount(); n > 0 {
					details = fmt.Sprintf(" (%d errors)", n)
				} else if n := res.WarningCount(); n > 0 {
					details = fmt.Sprintf(" (%d warnings)", n)
				}

				fmt.Printf("  %s %s: %s%s\n", icon, res.SkillName, status, details)
			}

			fmt.Println()
			if allPassed {
				fmt.Println("All skills passed!")
				return nil
			}
			fmt.Println("Some skills have errors. Run 'validate --all' for details.")
			os.Exit(1)
			return nil
		},
	}
}
