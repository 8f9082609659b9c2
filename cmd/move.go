package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/scalpel-geometry/api/schemas"
	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
)

func newMoveCmd() *cobra.Command {
	var (
		selector  string
		left, top float64
	)
	cmd := &cobra.Command{
		Use:   "move <source>",
		Short: "Moves every matching element to a document offset",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("left") && !cmd.Flags().Changed("top") {
				return errors.New("at least one of --left or --top is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var target geometry.Coordinates
			if cmd.Flags().Changed("left") {
				target.Left = &left
			}
			if cmd.Flags().Changed("top") {
				target.Top = &top
			}

			return runOnPage(cmd, args[0], func(s *session) error {
				els := s.page.Host().ResolveAll(selector)
				report := &schemas.MoveReport{
					Selector: selector,
					Matched:  len(els),
					Left:     target.Left,
					Top:      target.Top,
					Before:   offsetsOf(s.resolver, els),
				}
				s.report.Move = report

				s.resolver.SetOffset(selector, target)
				report.After = offsetsOf(s.resolver, els)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&selector, "selector", "s", "", "XPath of the elements to move")
	cmd.Flags().Float64Var(&left, "left", 0, "target document left")
	cmd.Flags().Float64Var(&top, "top", 0, "target document top")
	_ = cmd.MarkFlagRequired("selector")
	return cmd
}

func offsetsOf(r *geometry.Resolver, els []geometry.Element) []schemas.Point {
	out := make([]schemas.Point, len(els))
	for i, el := range els {
		out[i] = point(r.OffsetAcrossFrames(el, nil))
	}
	return out
}
