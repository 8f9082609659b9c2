package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/scalpel-geometry/api/schemas"
	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
)

func newOffsetCmd() *cobra.Command {
	var (
		selector    string
		relativeTop bool
	)
	cmd := &cobra.Command{
		Use:   "offset <source>",
		Short: "Reports the document offset of an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnPage(cmd, args[0], func(s *session) error {
				report := &schemas.OffsetReport{Selector: selector, RelativeTo: schemas.RelativeToOwnDocument}
				s.report.Offset = report

				var reference geometry.Window
				if relativeTop {
					reference = s.resolver.TopWindow(nil)
					report.RelativeTo = schemas.RelativeToTopDocument
				}

				offset, ok := s.resolver.GetOffsetRelativeTo(selector, reference)
				if !ok {
					s.inv.logger.Info("Element not found.", zap.String("selector", selector))
					return nil
				}
				report.Found = true
				p := point(offset)
				report.Offset = &p
				report.FrameDepth = s.resolver.ViewingContextChain(s.page.Host().Resolve(selector), reference).Depth()
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&selector, "selector", "s", "", "XPath of the element to measure")
	cmd.Flags().BoolVar(&relativeTop, "relative-top", false, "measure against the top-most document instead of the element's own")
	_ = cmd.MarkFlagRequired("selector")
	return cmd
}
