package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/scalpel-geometry/api/schemas"
	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
)

func newScrollCmd() *cobra.Command {
	var (
		selector  string
		container string
		dryRun    bool
	)
	cmd := &cobra.Command{
		Use:   "scroll <source>",
		Short: "Scrolls an element into view inside its document or a scrollable container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := invocationFrom(cmd.Context())
			if err != nil {
				return err
			}
			g := inv.cfg.Geometry()
			align, err := geometry.ParseAlign(g.AlignWithTop)
			if err != nil {
				return fmt.Errorf("invalid --align: %w", err)
			}
			alignment := geometry.AlignmentOptions{
				AlignWithTop:          align,
				AllowHorizontalScroll: geometry.Bool(g.AllowHorizontalScroll),
				OnlyScrollIfNeeded:    g.OnlyScrollIfNeeded,
			}
			var target geometry.Target
			if container != "" {
				target = geometry.SelectorTarget(container)
			}

			return runOnPage(cmd, args[0], func(s *session) error {
				report := &schemas.ScrollReport{Selector: selector, Container: container}
				s.report.Scroll = report

				plan, ok := s.resolver.PlanScrollIntoView(selector, target, alignment)
				if !ok {
					s.inv.logger.Info("Element not found; nothing scrolled.", zap.String("selector", selector))
					return nil
				}
				report.Found = true
				report.Alignment = schemas.AlignmentReport{
					AlignWithTop:          plan.Policy.AlignWithTop.String(),
					AllowHorizontalScroll: plan.Policy.AllowHorizontalScroll,
					OnlyScrollIfNeeded:    plan.Policy.OnlyScrollIfNeeded,
				}
				report.Vertical = axisPlan(plan.Vertical)
				report.Horizontal = axisPlan(plan.Horizontal)

				scroller := scrollerTarget(plan.Container)
				report.Before = scrollPoint(s.resolver, scroller)
				if !dryRun {
					s.resolver.ApplyScroll(plan)
					report.Applied = true
				}
				report.After = scrollPoint(s.resolver, scroller)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&selector, "selector", "s", "", "XPath of the element to bring into view")
	cmd.Flags().StringVar(&container, "container", "", "XPath of the scroll container (default: the element's document)")
	cmd.Flags().String("align", "auto", "alignment: auto, top or bottom (overrides geometry.align_with_top)")
	cmd.Flags().Bool("only-if-needed", false, "leave visible elements alone")
	cmd.Flags().Bool("no-horizontal", false, "never scroll horizontally")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report the plan without scrolling")
	_ = cmd.MarkFlagRequired("selector")
	return cmd
}

func scrollerTarget(s geometry.Scroller) geometry.Target {
	if s.IsWindow() {
		return geometry.WindowTarget(s.Window)
	}
	return geometry.ElementTarget(s.Element)
}

func scrollPoint(r *geometry.Resolver, t geometry.Target) schemas.Point {
	left, _ := r.ScrollLeft(t)
	top, _ := r.ScrollTop(t)
	return schemas.Point{Left: left, Top: top}
}
