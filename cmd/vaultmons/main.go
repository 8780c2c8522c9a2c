package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qoala/monster/internal/codegen"
	"github.com/qoala/monster/internal/config"
	"github.com/qoala/monster/internal/parser"
	"github.com/qoala/monster/internal/scanner"
	"github.com/qoala/monster/internal/ui"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "vaultmons [des_folder] [output_file]",
	Short: "Generate vault monster data from map definition files",
	Long: `Scans a tree of .des map definition files for MONS:/KMONS: directives,
keeps the specs that carry an explicit monster name, and writes a generated
C++ source file with an accessor returning them as string literals.

Defaults:
  des_folder   ` + config.DefaultDesFolder + `
  output_file  ` + config.DefaultOutput,
	Args: cobra.MaximumNArgs(2),
	RunE: runGenerate,
}

var previewCmd = &cobra.Command{
	Use:   "preview [des_folder]",
	Short: "Browse extracted monster specs without writing output",
	Long: `Scans the des folder and opens an interactive list of the monster specs
that would end up in the generated file. Type to filter, esc to quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(previewCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print each processed file")
	previewCmd.Flags().Bool("all", false, "Include anonymous (unnamed) specs")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

// newScanner builds a Scanner from the resolved configuration.
func newScanner() *scanner.Scanner {
	opts := scanner.Options{
		Extension:     config.GetExtension(),
		IgnoreFiles:   config.GetIgnoreFiles(),
		IgnoreFolders: config.GetIgnoreDirs(),
	}
	if config.GetVerbose() {
		opts.Reporter = scanner.WriterReporter{Out: os.Stderr}
	}
	return scanner.New(opts)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	desFolder := config.GetDesFolder()
	output := config.GetOutput()

	if len(args) >= 1 {
		desFolder = args[0]
	}
	if len(args) >= 2 {
		output = args[1]
	}

	return generate(desFolder, output)
}

// generate runs the scan -> cull -> emit pipeline.
func generate(desFolder, output string) error {
	candidates, err := newScanner().Scan(desFolder)
	if err != nil {
		return err
	}

	return codegen.Write(parser.CullUnnamed(candidates), output)
}

func runPreview(cmd *cobra.Command, args []string) error {
	desFolder := config.GetDesFolder()
	if len(args) >= 1 {
		desFolder = args[0]
	}

	candidates, err := newScanner().Scan(desFolder)
	if err != nil {
		return err
	}

	specs := candidates
	if all, _ := cmd.Flags().GetBool("all"); !all {
		specs = parser.CullUnnamed(candidates)
	}

	if len(specs) == 0 {
		return fmt.Errorf("no monster specs found in %s", desFolder)
	}

	return ui.Run(desFolder, specs)
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
