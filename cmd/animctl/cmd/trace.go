package cmd

import (
	"fmt"
	"os"

	"github.com/framewright/timeline/pkg/dom"
	"github.com/framewright/timeline/pkg/timeline"
	"gopkg.in/yaml.v3"
)

func init() {
	RegisterCommand(&Command{
		Name:  "trace",
		Short: "Dump a script's marker index as YAML",
		Long: `Load a YAML scene and a named built-in instruction script, run it
headlessly to discover its full marker index, and dump the index as YAML
for inspecting marker placement and ordering.`,
		Usage: "animctl trace --scene FILE --script NAME [--target SELECTOR]",
		Run:   runTrace,
	})
}

func runTrace(args []string) error {
	var scenePath, scriptName, target string
	target = "#target"

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--scene":
			if i+1 >= len(args) {
				return fmt.Errorf("--scene requires a file path")
			}
			i++
			scenePath = args[i]
		case "--script":
			if i+1 >= len(args) {
				return fmt.Errorf("--script requires a name")
			}
			i++
			scriptName = args[i]
		case "--target":
			if i+1 >= len(args) {
				return fmt.Errorf("--target requires a selector")
			}
			i++
			target = args[i]
		default:
			return fmt.Errorf("unrecognized argument %q", args[i])
		}
	}
	if scenePath == "" {
		return fmt.Errorf("--scene is required")
	}
	if scriptName == "" {
		return fmt.Errorf("--script is required")
	}

	f, err := os.Open(scenePath)
	if err != nil {
		return fmt.Errorf("opening scene: %w", err)
	}
	defer f.Close()

	doc, err := dom.LoadScene(f)
	if err != nil {
		return fmt.Errorf("loading scene: %w", err)
	}

	script, err := lookupScript(scriptName)
	if err != nil {
		return err
	}

	player := timeline.NewPlayer("trace", script(target), doc)

	// Duration() walks the whole timeline forward and restores the start
	// position, which is enough to populate the marker index fully.
	if _, err := player.Duration(); err != nil {
		return fmt.Errorf("discovering duration: %w", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(player.Root().Markers())
}
