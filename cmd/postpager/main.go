// Command postpager shows the posts collection in a paginated terminal table.
package main

import (
	"os"

	"github.com/rshade/postpager/internal/cli"
	"github.com/rshade/postpager/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command and maps its result to an exit code. Cobra
// has already printed the error.
func run(args []string) int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
