package cmd

import (
	"fmt"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/scalpel-geometry/api/schemas"
	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// session is one loaded page with a resolver over it.
type session struct {
	inv      *invocation
	page     page
	resolver *geometry.Resolver
	report   *schemas.Report
}

// runOnPage loads source, runs fn against it and writes the report to stdout.
func runOnPage(cmd *cobra.Command, source string, fn func(s *session) error) error {
	inv, err := invocationFrom(cmd.Context())
	if err != nil {
		return err
	}

	p, err := openPage(cmd.Context(), inv, source)
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(); err != nil {
			inv.logger.Warn("Failed to close page.", zap.Error(err))
		}
	}()

	s := &session{
		inv:      inv,
		page:     p,
		resolver: geometry.NewHostResolver(p.Host(), inv.logger),
		report: &schemas.Report{
			InvocationID: inv.id,
			Timestamp:    time.Now().UTC(),
			Command:      cmd.Name(),
			Source:       source,
			Frame:        inv.frame,
		},
	}
	if err := fn(s); err != nil {
		return err
	}
	if err := p.Err(); err != nil {
		return fmt.Errorf("page access failed: %w", err)
	}
	return writeReport(cmd.OutOrStdout(), s.report)
}

func writeReport(w io.Writer, report *schemas.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func point(p geometry.Point) schemas.Point {
	return schemas.Point{Left: p.Left, Top: p.Top}
}

func axisPlan(p geometry.AxisPlan) schemas.AxisPlan {
	return schemas.AxisPlan{DiffTop: p.DiffTop, DiffBottom: p.DiffBottom, From: p.From, To: p.To, Scroll: p.Scroll}
}

func modeName(m geometry.CompatMode) string {
	if m == geometry.StandardsMode {
		return "CSS1Compat"
	}
	return "BackCompat"
}
