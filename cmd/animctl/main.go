// Command animctl drives the timeline engine headlessly, against a
// declarative YAML scene, for debugging and demonstration without a
// browser or mobile host.
package main

import (
	"os"

	"github.com/framewright/timeline/cmd/animctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
