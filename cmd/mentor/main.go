/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for mentor. Loads automata, grammars and
expressions from description files and runs acceptance, conversion, comparison,
generation and graph rendering on them.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/mentor/cmd/mentor/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	modelType  string

	// Logging configuration
	logLevel  string
	logFormat string
	logDir    string

	// Bounds
	maxSteps   int
	maxConfigs int
	maxForms   int
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mentor",
		Short: "mentor - automata, grammars and regular expressions",
		Long: `mentor builds DFAs, NFAs, PDAs, regular expressions, context-free grammars
and Turing machines from description files. It decides membership with traces,
converts between regular expressions and finite automata, checks equivalence
with a distinguishing witness, enumerates languages and draws state graphs.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&modelType, "type", "t", "", "Model type of the description (dfa, nfa, pda, re, cfg, tm)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "Logging level (debug, info, warning, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (console only when empty)")
	rootCmd.PersistentFlags().IntVar(&maxSteps, "max-steps", 10000, "Step bound for Turing machine runs")
	rootCmd.PersistentFlags().IntVar(&maxConfigs, "max-configurations", 200000, "Configuration bound for PDA searches")
	rootCmd.PersistentFlags().IntVar(&maxForms, "max-forms", 200000, "Sentential form bound for derivation searches")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("type", rootCmd.PersistentFlags().Lookup("type"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("tm.max_steps", rootCmd.PersistentFlags().Lookup("max-steps"))
	viper.BindPFlag("pda.max_configurations", rootCmd.PersistentFlags().Lookup("max-configurations"))
	viper.BindPFlag("generate.max_forms", rootCmd.PersistentFlags().Lookup("max-forms"))

	// Add accept command
	acceptCmd := &cobra.Command{
		Use:   "accept <desc-file> <strings...>",
		Short: "Decide whether the model accepts each input string",
		Long: `Run every input on the model and print accepted or rejected for each one.
With --trace the configurations of the run are printed under each verdict.`,
		Args: cobra.MinimumNArgs(2),
		RunE: commands.RunAccept,
	}
	acceptCmd.Flags().Bool("trace", false, "Print the configuration trace of each run")
	viper.BindPFlag("accept.trace", acceptCmd.Flags().Lookup("trace"))
	rootCmd.AddCommand(acceptCmd)

	// Add convert command
	convertCmd := &cobra.Command{
		Use:   "convert <desc-file>",
		Short: "Convert between regular expressions, NFAs and DFAs",
		Long: `Convert a regular expression, NFA or DFA into an equivalent model of another
of those kinds and print its description, or write it with --out.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunConvert,
	}
	convertCmd.Flags().StringP("output-type", "o", "", "Target model type (dfa, nfa, re) (required)")
	convertCmd.Flags().String("out", "", "Write the converted description to this file")
	convertCmd.MarkFlagRequired("output-type")
	viper.BindPFlag("convert.output_type", convertCmd.Flags().Lookup("output-type"))
	viper.BindPFlag("convert.out", convertCmd.Flags().Lookup("out"))
	rootCmd.AddCommand(convertCmd)

	// Add compare command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "compare <desc-file> <target-file>",
		Short: "Check two regular models for language equivalence",
		Long: `Decide whether two regular expressions or finite automata accept the same
language. When they differ the shortest distinguishing string is printed.`,
		Args: cobra.ExactArgs(2),
		RunE: commands.RunCompare,
	})

	// Add graph command
	graphCmd := &cobra.Command{
		Use:   "graph <desc-file> [output.pdf|output.html|output.dot]",
		Short: "Draw the state graph of an automaton",
		Long: `Render the state graph of a DFA, NFA, PDA, TM or regular expression. The output
format follows the file extension. Without an output file the graph is shown in
the desktop viewer; --dot prints the DOT text instead.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: commands.RunGraph,
	}
	graphCmd.Flags().BoolP("display", "d", false, "Also open the rendered output file in the desktop viewer")
	graphCmd.Flags().Bool("dot", false, "Print DOT text to stdout instead of displaying the graph")
	graphCmd.Flags().String("viewer", "", "Program used to display graphs (platform default when empty)")
	viper.BindPFlag("graph.display", graphCmd.Flags().Lookup("display"))
	viper.BindPFlag("graph.dot", graphCmd.Flags().Lookup("dot"))
	viper.BindPFlag("graph.viewer", graphCmd.Flags().Lookup("viewer"))
	rootCmd.AddCommand(graphCmd)

	// Add generate commands
	rootCmd.AddCommand(&cobra.Command{
		Use:   "generate <desc-file> <num-words>",
		Short: "List the first words of the language in shortlex order",
		Args:  cobra.ExactArgs(2),
		RunE:  commands.RunGenerate,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "generate-length <desc-file> <length>",
		Short: "List every word of a grammar or PDA language up to a length",
		Args:  cobra.ExactArgs(2),
		RunE:  commands.RunGenerateLength,
	})

	return rootCmd
}
