package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillforge/skillcheck/report"
	"github.com/skillforge/skillcheck/skill"
)

func checkImportsCmd(opts *cliOptions) *cobra.Command {
	var skillName string

	cmd := &cobra.Command{
		Use:   "check-imports",
		Short: "Check import statements in skill code blocks",
		Long: `Check import statements in skill code blocks.

Validates that imports reference current LangChain/LangGraph modules.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, err := setup(opts)
			if err != nil {
				return err
			}

			path := filepath.Join(cfg.Skills.Dir, skillName, skill.DocumentFilename)
			doc, err := skill.Load(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Skill not found: %s\n", skillName)
				os.Exit(1)
			}

			fragments := pythonFragments(skill.ExtractFragments(doc.Body))

			fmt.Printf("Checking imports in %s...\n", skillName)
			fmt.Printf("Found %d code blocks\n\n", len(fragments))

			total := 0
			for _, frag := range fragments {
				issues := engine.CheckImports(frag.Text)
				if len(issues) == 0 {
					continue
				}
				fmt.Printf("Block %d:\n", frag.Ordinal)
				fmt.Println(report.FormatImportIssues(issues))
				fmt.Println()
				total += len(issues)
			}

			if total == 0 {
				fmt.Println("No import issues found!")
			} else {
				fmt.Printf("\nTotal: %d import issues\n", total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&skillName, "skill", "", "Skill to check")
	_ = cmd.MarkFlagRequired("skill")

	return cmd
}

// pythonFragments keeps the fragments import checking applies to:
// Python-tagged and untagged blocks.
func pythonFragments(fragments []skill.Fragment) []skill.Fragment {
	var out []skill.Fragment
	for _, f := range fragments {
		switch f.Language {
		case "python", "py", "":
			out = append(out, f)
		}
	}
	return out
}

func listRulesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list-rules",
		Short: "List all validation rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, engine, err := setup(opts)
			if err != nil {
				return err
			}
			fmt.Println(report.FormatRules(engine.Rules()))
			return nil
		},
	}
}
