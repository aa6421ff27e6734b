package cmd

import (
	"fmt"

	"github.com/framewright/timeline/pkg/dom"
	"github.com/framewright/timeline/pkg/timeline"
)

// scriptFunc builds an instruction for the named built-in script, closing
// over the selector the scene author wants it to drive.
type scriptFunc func(target string) timeline.InstructionFunc

var scripts = map[string]scriptFunc{
	"fade":     fadeScript,
	"sequence": sequenceScript,
	"bounce":   bounceScript,
	"stagger":  staggerScript,
}

func lookupScript(name string) (scriptFunc, error) {
	fn, ok := scripts[name]
	if !ok {
		return nil, fmt.Errorf("unknown script %q (known: fade, sequence, bounce, stagger)", name)
	}
	return fn, nil
}

// fadeScript animates opacity from 0 to 1 over 300ms on target.
func fadeScript(target string) timeline.InstructionFunc {
	return func(api timeline.API) error {
		el, ok := api.Select(target)
		if !ok {
			return fmt.Errorf("fade: no element matches %q", target)
		}
		duration := int64(300)
		api.Animate(timeline.AnimateParams{
			Target:   dom.ElementTarget(el),
			Duration: &duration,
			Properties: map[string]timeline.PropertySpec{
				"opacity": timeline.FromTo("0", "1"),
			},
		})
		return nil
	}
}

// sequenceScript runs two 200ms tweens back to back: a move then a fade.
func sequenceScript(target string) timeline.InstructionFunc {
	return func(api timeline.API) error {
		el, ok := api.Select(target)
		if !ok {
			return fmt.Errorf("sequence: no element matches %q", target)
		}
		duration := int64(200)
		api.Sequence(
			func(api timeline.API) error {
				api.Animate(timeline.AnimateParams{
					Target:   dom.ElementTarget(el),
					Duration: &duration,
					Properties: map[string]timeline.PropertySpec{
						"transform": timeline.FromTo("translateX(0px)", "translateX(100px)"),
					},
				})
				return nil
			},
			func(api timeline.API) error {
				api.Animate(timeline.AnimateParams{
					Target:   dom.ElementTarget(el),
					Duration: &duration,
					Properties: map[string]timeline.PropertySpec{
						"opacity": timeline.FromTo("1", "0"),
					},
				})
				return nil
			},
		)
		return nil
	}
}

// staggerScript fades in every element matched by target, each with an
// increasing delay so they animate in sequence instead of all at once.
func staggerScript(target string) timeline.InstructionFunc {
	return func(api timeline.API) error {
		api.Iterate(target, func(el *dom.Element, index int) timeline.InstructionFunc {
			return func(api timeline.API) error {
				duration := int64(200)
				delay := int64(index * 50)
				api.Animate(timeline.AnimateParams{
					Target:   dom.ElementTarget(el),
					Duration: &duration,
					Delay:    &delay,
					Properties: map[string]timeline.PropertySpec{
						"opacity": timeline.FromTo("0", "1"),
					},
				})
				return nil
			}
		})
		return nil
	}
}

// bounceScript plays a single 200ms tween twice, alternating direction —
// exercises PlayerEntity's duration discovery and child-seek mapping.
func bounceScript(target string) timeline.InstructionFunc {
	return func(api timeline.API) error {
		el, ok := api.Select(target)
		if !ok {
			return fmt.Errorf("bounce: no element matches %q", target)
		}
		api.Play(timeline.PlayParams{Times: 2, Alternate: true}, func(api timeline.API) error {
			duration := int64(200)
			api.Animate(timeline.AnimateParams{
				Target:   dom.ElementTarget(el),
				Duration: &duration,
				Properties: map[string]timeline.PropertySpec{
					"transform": timeline.FromTo("translateY(0px)", "translateY(-40px)"),
				},
			})
			return nil
		})
		return nil
	}
}
