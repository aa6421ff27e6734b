package cmd

import (
	"fmt"
	"os"

	"github.com/framewright/timeline/pkg/dom"
	"github.com/framewright/timeline/pkg/timeline"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Drive a scene through a named script and print committed frames",
		Long: `Load a YAML scene and a named built-in instruction script, drive a
Player headlessly to the end of playback, and print the target element's
committed property values after every frame.

Known scripts: fade, sequence, bounce, stagger`,
		Usage: "animctl run --scene FILE --script NAME [--target SELECTOR]",
		Run:   runRun,
	})
}

func runRun(args []string) error {
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

	player := timeline.NewPlayer("run", script(target), doc)

	duration, err := player.Duration()
	if err != nil {
		return fmt.Errorf("discovering duration: %w", err)
	}

	el, _ := player.Root().Select(target)

	for t := int64(0); t <= duration; t += timeline.FrameMS {
		if err := player.Move(t); err != nil {
			return fmt.Errorf("moving to %dms: %w", t, err)
		}
		printFrame(t, el)
	}
	return nil
}

func printFrame(t int64, el *dom.Element) {
	if el == nil {
		fmt.Printf("t=%4dms (no target)\n", t)
		return
	}
	fmt.Printf("t=%4dms style=%v attrs=%v\n", t, el.Style, el.Attributes)
}
