/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate.go
Description: Generate and generate-length commands. Words are printed one per line
in shortlex order; words found before a bound tripped are printed before the error.
*/

package commands

import (
	"fmt"
	"strconv"

	"github.com/kleascm/mentor/pkg/core"
	"github.com/spf13/cobra"
)

// RunGenerate prints the first <num-words> words of the language
func RunGenerate(cmd *cobra.Command, args []string) error {
	count, err := parseCount(args[1], "num-words")
	if err != nil {
		return err
	}
	engine, m, err := openModel(cmd, args[0])
	if err != nil {
		return err
	}
	defer engine.Close()

	words, err := engine.Generate(m, count)
	core.NewReporter(cmd.OutOrStdout()).Words(words)
	return err
}

// RunGenerateLength prints every word of length at most <length>
func RunGenerateLength(cmd *cobra.Command, args []string) error {
	length, err := parseCount(args[1], "length")
	if err != nil {
		return err
	}
	engine, m, err := openModel(cmd, args[0])
	if err != nil {
		return err
	}
	defer engine.Close()

	words, err := engine.GenerateUpToLength(m, length)
	core.NewReporter(cmd.OutOrStdout()).Words(words)
	return err
}

func parseCount(arg, name string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", name, arg)
	}
	return n, nil
}
