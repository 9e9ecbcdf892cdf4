/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: graph.go
Description: Graph command. Renders the state graph to DOT, HTML or PDF by output
extension. Without an output file the graph is written to a temporary page and
shown in the desktop viewer, or printed as DOT with --dot.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kleascm/mentor/pkg/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunGraph draws the model's state graph
func RunGraph(cmd *cobra.Command, args []string) error {
	engine, m, err := openModel(cmd, args[0])
	if err != nil {
		return err
	}
	defer engine.Close()

	if len(args) == 1 && viper.GetBool("graph.dot") {
		view, err := engine.GraphView(m)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), render.DOT(view))
		return nil
	}

	var path string
	display := viper.GetBool("graph.display")
	if len(args) == 2 {
		path = args[1]
	} else {
		display = true
		dir, err := os.MkdirTemp("", "mentor-graph-")
		if err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path = filepath.Join(dir, m.Name+".html")
	}

	if err := engine.RenderGraph(cmd.Context(), m, path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

	if display {
		return render.OpenWith(viper.GetString("graph.viewer"), path)
	}
	return nil
}
