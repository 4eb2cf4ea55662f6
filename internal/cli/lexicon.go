package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/humanids/pkg/lexicon"
)

var lexiconFormats = []string{"text", "json", "yaml"}

func newLexiconCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "lexicon [category]",
		Short: "Show the built-in word lists",
		Long: `Without arguments, print a summary of every category. With a category
name (adjectives, nouns, verbs or adverbs) print its summary and words.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"adjectives", "nouns", "verbs", "adverbs"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				summaries := make([]lexicon.Summary, 0, 4)
				for _, c := range lexicon.All() {
					summaries = append(summaries, lexicon.Summarize(c))
				}
				return printSummaries(out, format, summaries)
			}

			c, err := lexicon.Lookup(args[0])
			if err != nil {
				return err
			}
			return printCategory(out, format, c)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "text", "Output format: text, json or yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(lexiconFormats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// categoryListing is the structured form of a single category.
type categoryListing struct {
	lexicon.Summary `yaml:",inline"`
	Words           []string `json:"words" yaml:"words"`
}

func printSummaries(w io.Writer, format string, summaries []lexicon.Summary) error {
	switch format {
	case "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CATEGORY\tWORDS\tLONGEST\tSHORTEST")
		for _, s := range summaries {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", s.Name, s.Size, s.Longest, s.Shortest)
		}
		return tw.Flush()
	default:
		return encode(w, format, summaries)
	}
}

func printCategory(w io.Writer, format string, c lexicon.Category) error {
	listing := categoryListing{Summary: lexicon.Summarize(c), Words: c.Words()}

	switch format {
	case "text":
		fmt.Fprintf(w, "%s: %d words (longest %q, shortest %q)\n",
			listing.Name, listing.Size, listing.Longest, listing.Shortest)
		for _, word := range listing.Words {
			if _, err := fmt.Fprintln(w, word); err != nil {
				return err
			}
		}
		return nil
	default:
		return encode(w, format, listing)
	}
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q (want one of %v)", ErrUnsupportedFormat, format, lexiconFormats)
	}
}
