package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xkilldash9x/scalpel-geometry/api/schemas"
	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
)

func newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics <source>",
		Short: "Reports document and viewport sizes of the current window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnPage(cmd, args[0], func(s *session) error {
				host := s.page.Host()
				r := s.resolver
				scrollLeft, _ := r.ScrollLeft(geometry.Target{})
				scrollTop, _ := r.ScrollTop(geometry.Target{})
				s.report.Metrics = &schemas.MetricsReport{
					Mode:           modeName(host.CompatibilityMode(host.DocumentOf(host.CurrentWindow()))),
					DocWidth:       r.DocWidth(nil),
					DocHeight:      r.DocHeight(nil),
					ViewportWidth:  r.ViewportWidth(nil),
					ViewportHeight: r.ViewportHeight(nil),
					ScrollLeft:     scrollLeft,
					ScrollTop:      scrollTop,
				}
				return nil
			})
		},
	}
}
