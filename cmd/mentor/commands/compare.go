/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: compare.go
Description: Compare command. --type applies to the first description only; the
target's kind comes from its own file.
*/

package commands

import (
	"github.com/kleascm/mentor/pkg/core"
	"github.com/spf13/cobra"
)

// RunCompare checks two models for language equivalence
func RunCompare(cmd *cobra.Command, args []string) error {
	engine, left, err := openModel(cmd, args[0])
	if err != nil {
		return err
	}
	defer engine.Close()

	right, err := engine.Load(args[1], 0)
	if err != nil {
		return err
	}

	res, err := engine.Compare(left, right)
	if err != nil {
		return err
	}
	core.NewReporter(cmd.OutOrStdout()).Comparison(res)
	return nil
}
