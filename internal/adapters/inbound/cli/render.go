package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abdidvp/transformspec/internal/adapters/outbound/tui"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/workspace"
	"github.com/abdidvp/transformspec/internal/application"
	"github.com/abdidvp/transformspec/internal/domain"
)

func newRenderCmd() *cobra.Command {
	var (
		kindName   string
		formatName string
		outDir     string
		toStdout   bool
		outline    bool
	)

	cmd := &cobra.Command{
		Use:   "render <spec>",
		Short: "Render the requirements and technical reports",
		Long: "Render a spec into the Requirements Specification and Technical Details reports as Markdown, PDF or both. " +
			"Use --stdout to print a single Markdown report, or --outline to show the numbered section tree.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseKinds(kindName)
			if err != nil {
				return err
			}
			formats, err := parseFormats(formatName)
			if err != nil {
				return err
			}

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			spec, err := a.specs.Load(args[0])
			if err != nil {
				return err
			}

			// One timestamp for every report of this invocation.
			at := a.renders.Now()
			renders := a.renders.WithClock(func() time.Time { return at })
			out := cmd.OutOrStdout()

			if outline {
				for _, kind := range kinds {
					doc, err := renders.Compose(kind, spec)
					if err != nil {
						return err
					}
					paged, err := renders.Render(kind, application.FormatPDF, spec)
					if err != nil {
						return err
					}
					fmt.Fprint(out, tui.RenderOutline(doc, paged.Pages))
				}
				return nil
			}

			if toStdout {
				if len(kinds) != 1 || len(formats) != 1 || formats[0] != application.FormatMarkdown {
					return fmt.Errorf("--stdout needs a single --kind and --format markdown")
				}
				art, err := renders.Render(kinds[0], application.FormatMarkdown, spec)
				if err != nil {
					return err
				}
				_, err = out.Write(art.Data)
				return err
			}

			files := workspace.New("")
			dir, err := files.Prepare(outDir)
			if err != nil {
				return err
			}
			for _, kind := range kinds {
				for _, format := range formats {
					art, err := renders.Render(kind, format, spec)
					if err != nil {
						return err
					}
					path, err := files.Write(dir, art.Name, art.Data)
					if err != nil {
						return fmt.Errorf("writing %s: %w", art.Name, err)
					}
					if art.Pages > 0 {
						fmt.Fprintf(out, "Wrote %s (%d pages)\n", path, art.Pages)
					} else {
						fmt.Fprintf(out, "Wrote %s\n", path)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kindName, "kind", "all", "Report to render (requirements, technical, all)")
	cmd.Flags().StringVar(&formatName, "format", "all", "Output format (markdown, pdf, all)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory to write the reports to")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print a single Markdown report instead of writing files")
	cmd.Flags().BoolVar(&outline, "outline", false, "Show the numbered section tree and page count")

	return cmd
}

func parseKinds(name string) ([]domain.DocumentKind, error) {
	if name == "" || name == "all" {
		return domain.ValidDocumentKinds, nil
	}
	kind, err := application.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return []domain.DocumentKind{kind}, nil
}

func parseFormats(name string) ([]application.Format, error) {
	if name == "" || name == "all" {
		return application.ValidFormats, nil
	}
	format, err := application.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return []application.Format{format}, nil
}
