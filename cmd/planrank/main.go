package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/planrank/internal/compare"
	"github.com/rgehrsitz/planrank/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "planrank",
	Short: "Health plan comparison by geometric-mean wealth",
	Long: "Ranks health insurance plan options by the geometric mean of retained\n" +
		"disposable income across yearly outcome scenarios, so that any\n" +
		"near-catastrophic scenario dominates the ranking.",
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare and rank plans from a configuration file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var cfg *config.Configuration
		var err error

		if len(args) == 1 {
			parser := config.NewInputParser()
			cfg, err = parser.LoadFromFile(args[0])
			if err != nil {
				log.Fatal(err)
			}
		} else {
			cfg = config.ExampleConfiguration()
			fmt.Fprintln(os.Stderr, "No input file given; using the built-in example catalog")
		}

		noAddons, _ := cmd.Flags().GetBool("no-addons")
		input := cfg.CompareInput()
		if noAddons {
			input.Addons.Dental = nil
			input.Addons.Vision = nil
		}

		engine := compare.NewEngine()
		results := engine.Compare(cfg.Plans, input)

		outputFormat, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")

		switch outputFormat {
		case "table":
			tf := &compare.TableFormatter{Verbose: verbose}
			fmt.Print(tf.Format(results))
		case "csv":
			cf := &compare.CSVFormatter{}
			out, err := cf.Format(results)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(out)
		case "json":
			jf := &compare.JSONFormatter{Pretty: true}
			out, err := jf.Format(results)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(out)
		default:
			log.Fatalf("unknown output format %q (want table, csv, or json)", outputFormat)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Configuration file %s is valid (%d plans)\n", inputFile, len(cfg.Plans))
	},
}

var initCmd = &cobra.Command{
	Use:   "init [output-file]",
	Short: "Write an example configuration file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		outputFile := "plans.yaml"
		if len(args) == 1 {
			outputFile = args[0]
		}

		if _, err := os.Stat(outputFile); err == nil {
			log.Fatalf("%s already exists; refusing to overwrite", outputFile)
		}

		data, err := yaml.Marshal(config.ExampleConfiguration())
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(outputFile, data, 0o644); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Wrote example configuration to %s\n", outputFile)
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "planrank %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func init() {
	compareCmd.Flags().StringP("format", "f", "table", "Output format: table, csv, json")
	compareCmd.Flags().BoolP("verbose", "v", false, "Include per-scenario wealth breakdowns")
	compareCmd.Flags().Bool("no-addons", false, "Exclude dental/vision add-ons from the comparison")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
