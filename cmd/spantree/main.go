// Command spantree loads weighted undirected graphs from edge-list files and
// runs minimum spanning tree, shortest path and traversal algorithms on them.
//
// Configuration is merged from built-in defaults, an optional YAML file
// (-config or $SPANTREE_CONFIG), SPANTREE_* environment variables and flags,
// in increasing priority.
package main

import (
	"os"

	"github.com/maruel/subcommands"
)

func getApplication() *subcommands.DefaultApplication {
	return &subcommands.DefaultApplication{
		Name:  "spantree",
		Title: "Minimum spanning trees, shortest paths and traversals over edge-list graphs.",
		Commands: []*subcommands.Command{
			cmdShow,
			cmdPrim,
			cmdKruskal,
			cmdMST,
			cmdDijkstra,
			cmdBFS,
			cmdDFS,
			cmdGenerate,
			subcommands.CmdHelp,
		},
	}
}

func main() {
	os.Exit(subcommands.Run(getApplication(), nil))
}
