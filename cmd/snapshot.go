package cmd

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/delegate"
	"github.com/ziadkadry99/folio/internal/view"
)

var (
	snapshotPage    string
	snapshotSteps   string
	snapshotOutput  string
	snapshotClassic bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render one page and replay interactions against it",
	Long: `Renders a single page, replays a script of clicks and key presses
through the same markers the browser uses, and writes the resulting
document. Script lines look like "click .casePair [data-case-index]" or
"key Escape".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		a, err := newAssembler(cfg, log)
		if err != nil {
			return err
		}

		u := &url.URL{Path: cfg.BasePath}
		q := url.Values{}
		if snapshotPage != "" {
			q.Set(view.Param, snapshotPage)
		}
		if snapshotClassic {
			q.Set(view.LayoutParam, string(view.Classic))
		}
		u.RawQuery = q.Encode()
		pg, err := a.Assemble(cmd.Context(), u)
		if err != nil {
			return fmt.Errorf("rendering page: %w", err)
		}
		if pg.LoadErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: content could not be loaded: %v\n", pg.LoadErr)
		}

		if snapshotSteps != "" {
			data, err := os.ReadFile(snapshotSteps)
			if err != nil {
				return fmt.Errorf("reading steps: %w", err)
			}
			steps, err := delegate.ParseScript(strings.Split(string(data), "\n"))
			if err != nil {
				return fmt.Errorf("parsing %s: %w", snapshotSteps, err)
			}
			if err := delegate.New(pg.Doc, a.Renderer, log.Named("delegate")).Replay(steps); err != nil {
				return err
			}
		}

		var out io.Writer = os.Stdout
		if snapshotOutput != "" {
			f, err := os.Create(snapshotOutput)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			defer f.Close()
			out = f
		}
		return pg.Render(out)
	},
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotPage, "page", "", "page to render (research, ai, pm, content, visual); empty renders the dashboard")
	snapshotCmd.Flags().BoolVar(&snapshotClassic, "classic", false, "render the classic single-page layout")
	snapshotCmd.Flags().StringVar(&snapshotSteps, "steps", "", "file with interactions to replay")
	snapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "", "write the document here instead of stdout")
	rootCmd.AddCommand(snapshotCmd)
}
