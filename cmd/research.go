package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ammar944/AI-GOS-sub011/internal/extract"
	"github.com/ammar944/AI-GOS-sub011/internal/model"
	"github.com/ammar944/AI-GOS-sub011/internal/pipeline"
)

var (
	researchLinkedIn string
	researchFormat   string
)

var researchCmd = &cobra.Command{
	Use:   "research <website-url>",
	Short: "Research one company and print the prefilled form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if researchFormat != "json" && researchFormat != "yaml" {
			return eris.Errorf("unsupported format %q (want json or yaml)", researchFormat)
		}
		if err := cfg.Validate("research"); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initResearch(ctx, cfg, hooks{})
		if err != nil {
			return err
		}
		run, err := env.newResearcher().Start(ctx, model.ResearchRequest{
			WebsiteURL:  args[0],
			LinkedInURL: researchLinkedIn,
		})
		if err != nil {
			return err
		}
		return printRun(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), run, researchFormat)
	},
}

func init() {
	researchCmd.Flags().StringVar(&researchLinkedIn, "linkedin", "", "company LinkedIn URL")
	researchCmd.Flags().StringVar(&researchFormat, "format", "json", "output format: json or yaml")
	rootCmd.AddCommand(researchCmd)
}

// researchReport is the final output of the research command.
type researchReport struct {
	WebsiteURL string                       `json:"websiteUrl"`
	SearchOnly bool                         `json:"searchOnly"`
	Pages      int                          `json:"pagesScraped"`
	Object     *model.CompanyResearchOutput `json:"object"`
	FormData   *model.OnboardingFormData    `json:"formData"`
	Usage      model.TokenUsage             `json:"usage"`
}

// printRun writes one progress line per delta to progress and the final
// report to out.
func printRun(ctx context.Context, out, progress io.Writer, run *pipeline.Run, format string) error {
	total := len(model.ResearchFields)
	last := -1
	for ev := range run.Session.Events() {
		switch ev.Type {
		case extract.EventDelta:
			if n := ev.Partial.PopulatedCount(); n != last {
				fmt.Fprintf(progress, "researching %s: %d/%d fields\n", run.Request.WebsiteURL, n, total) //nolint:errcheck
				last = n
			}
		case extract.EventError:
			return ev.Err
		case extract.EventDone:
			report := researchReport{
				WebsiteURL: run.Request.WebsiteURL,
				SearchOnly: run.SearchOnly,
				Object:     ev.Object,
				FormData:   pipeline.MapToFormData(ev.Object),
				Usage:      ev.Usage,
			}
			if run.Fetch != nil {
				report.Pages = len(run.Fetch.Pages)
			}
			return writeReport(out, report, format)
		}
	}
	if ctx.Err() != nil {
		return extract.ErrCancelled
	}
	_, err := run.Session.Wait()
	return err
}

func writeReport(w io.Writer, report researchReport, format string) error {
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return eris.Wrap(err, "encode report")
	}
	if format == "yaml" {
		if raw, err = jsonToYAML(raw); err != nil {
			return err
		}
	} else {
		raw = append(raw, '\n')
	}
	_, err = w.Write(raw)
	return err
}

// jsonToYAML re-encodes a JSON document as block-style YAML, keeping key
// order and the JSON field names.
func jsonToYAML(raw []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, eris.Wrap(err, "decode report")
	}
	blockStyle(&doc)
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, eris.Wrap(err, "encode yaml report")
	}
	return out, nil
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
