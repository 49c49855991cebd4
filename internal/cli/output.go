package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/degreeplan/internal/cli/formatter"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/preview"
	"github.com/alexanderramin/degreeplan/internal/render"
	"github.com/spf13/cobra"
)

// outputFlags are the extra destinations shared by generate and show.
type outputFlags struct {
	htmlPath   string
	exportPath string
	serveAddr  string
}

func (o *outputFlags) register(cmd *cobra.Command, app *App) {
	cmd.Flags().StringVar(&o.htmlPath, "html", "", "Also write the schedule as an HTML page to `FILE`")
	cmd.Flags().StringVar(&o.exportPath, "export", "", "Also export the schedule JSON to `FILE`")
	cmd.Flags().StringVar(&o.serveAddr, "serve", "", "Serve the schedule on `ADDR` until interrupted")
	if app.PreviewAddr != "" {
		cmd.Flags().Lookup("serve").NoOptDefVal = app.PreviewAddr
	}
}

// emitSchedule prints resp and then writes every requested extra output.
func emitSchedule(cmd *cobra.Command, app *App, resp *domain.ScheduleResponse, o outputFlags) error {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatter.FormatSchedule(resp))

	if o.htmlPath != "" {
		if err := writeFile(o.htmlPath, func(w io.Writer) error {
			return render.HTML(w, resp, render.Options{ExportHref: exportHref(o)})
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s %s\n", formatter.Dim("HTML written to"), o.htmlPath)
	}

	if o.exportPath != "" {
		var schedule []domain.Semester
		if resp != nil {
			schedule = resp.Schedule
		}
		if err := writeFile(o.exportPath, func(w io.Writer) error {
			return render.ExportJSON(w, schedule)
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", formatter.Dim("Schedule exported to"), o.exportPath)
	}

	if o.serveAddr != "" {
		srv := preview.New(resp, preview.Options{AccessLog: app.PreviewLog})
		return srv.ListenAndServe(cmd.Context(), o.serveAddr, func(url string) {
			fmt.Fprintf(out, "\n%s %s %s\n", formatter.Dim("Preview at"), formatter.StyleGreen.Render(url),
				formatter.Dim("(Ctrl+C to stop)"))
		})
	}
	return nil
}

// exportHref links the HTML page's export button to the exported file when
// both sit in the same directory.
func exportHref(o outputFlags) string {
	if o.exportPath == "" {
		return ""
	}
	if filepath.Dir(o.exportPath) == filepath.Dir(o.htmlPath) {
		return filepath.Base(o.exportPath)
	}
	abs, err := filepath.Abs(o.exportPath)
	if err != nil {
		return ""
	}
	return "file://" + filepath.ToSlash(abs)
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return write(f)
}
