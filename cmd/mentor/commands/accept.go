/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: accept.go
Description: Accept command. Prints one verdict per input string, with the run
trace underneath when --trace is set.
*/

package commands

import (
	"github.com/kleascm/mentor/pkg/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunAccept decides membership for every input argument
func RunAccept(cmd *cobra.Command, args []string) error {
	engine, m, err := openModel(cmd, args[0])
	if err != nil {
		return err
	}
	defer engine.Close()

	inputs := make([]string, len(args)-1)
	for i, arg := range args[1:] {
		inputs[i] = inputWord(arg)
	}

	results, err := engine.Accept(m, inputs, viper.GetBool("accept.trace"))
	core.NewReporter(cmd.OutOrStdout()).Accept(results)
	return err
}
