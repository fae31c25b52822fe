package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Pure-Company/pureext/htmlext"
)

type htmlResult struct {
	HTML    string `json:"html" yaml:"html"`
	Matched *int   `json:"matched,omitempty" yaml:"matched,omitempty"`
}

func newElementCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "element TAG CONTENT",
		Short: "Build an element holding CONTENT and print its HTML",
		Long: `Builds a TAG element. CONTENT is parsed as inner HTML unless --text is given,
in which case it is inserted as literal text.`,
		Args: usageArgs(cobra.ExactArgs(2)),
	}
	cmd.Flags().Bool("text", false, "insert CONTENT as text instead of markup")

	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		var content htmlext.Content = htmlext.Markup(args[1])
		if asText, _ := cmd.Flags().GetBool("text"); asText {
			content = htmlext.Text(args[1])
		}

		el, err := htmlext.Tag(args[0])(content)
		if err != nil {
			return usageError("create element: %w", err)
		}
		out, err := htmlext.Render(el)
		if err != nil {
			return err
		}
		return a.printer(cmd).print(htmlResult{HTML: out}, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, out)
			return err
		})
	})
	return cmd
}

const (
	modeToggle = "toggle"
	modeShow   = "show"
	modeHide   = "hide"
)

func newVisibilityCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visibility --selector SEL [--mode toggle|show|hide] [FILE]",
		Short: "Show, hide or toggle elements of an HTML document",
		Long: `Reads an HTML document from FILE, or from stdin when FILE is omitted or "-",
changes the hidden attribute of every element matching SEL and prints the
resulting document. In toggle mode each element is flipped on its own state.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
	}
	cmd.Flags().StringP("selector", "s", "", "CSS selector of the elements to change")
	cmd.Flags().StringP("mode", "m", modeToggle, "toggle, show or hide")
	cmd.MarkFlagRequired("selector")

	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		selector, _ := cmd.Flags().GetString("selector")
		mode, _ := cmd.Flags().GetString("mode")
		switch mode {
		case modeToggle, modeShow, modeHide:
		default:
			return usageError("unknown mode %q (want toggle, show or hide)", mode)
		}

		var r io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open document: %w", err)
			}
			defer f.Close()
			r = f
		}

		doc, err := htmlext.Parse(r)
		if err != nil {
			return err
		}

		sel := doc.Find(selector)
		matched := sel.Length()
		if matched == 0 {
			a.log.Warnw("Selector matched nothing", "selector", selector)
		}

		switch mode {
		case modeShow:
			htmlext.Show(htmlext.Selection(sel))
		case modeHide:
			htmlext.Hide(htmlext.Selection(sel))
		default:
			htmlext.ToggleEach(sel)
		}

		out, err := htmlext.Render(doc.Nodes[0])
		if err != nil {
			return err
		}
		return a.printer(cmd).print(htmlResult{HTML: out, Matched: &matched}, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, out)
			return err
		})
	})
	return cmd
}
