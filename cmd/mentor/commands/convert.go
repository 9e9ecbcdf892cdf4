/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: convert.go
Description: Convert command. Converts inside the RE, NFA, DFA triangle and writes
the result in the description file format.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/mentor/pkg/desc"
	"github.com/kleascm/mentor/pkg/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunConvert converts the model to --output-type
func RunConvert(cmd *cobra.Command, args []string) error {
	target, err := model.ParseKind(viper.GetString("convert.output_type"))
	if err != nil {
		return err
	}

	engine, m, err := openModel(cmd, args[0])
	if err != nil {
		return err
	}
	defer engine.Close()

	converted, err := engine.Convert(m, target)
	if err != nil {
		return err
	}

	if out := viper.GetString("convert.out"); out != "" {
		if err := desc.Save(out, converted); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", out, converted.Summary())
		return nil
	}

	data, err := desc.Encode(converted)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
