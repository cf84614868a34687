package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	"github.com/MrJamesThe3rd/aerooffers/internal/classifier"
)

func titleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "title [title]",
		Short: "Classify a single title",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runTitle,
	}

	cmd.Flags().String("category", "", "category hint (glider, tmg, airplane, ultralight, helicopter)")
	cmd.Flags().Bool("explain", false, "print tokens, grams and the winning score")

	return cmd
}

func runTitle(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")

	var category catalog.Category

	if s, _ := cmd.Flags().GetString("category"); s != "" {
		c, err := catalog.ParseCategory(s)
		if err != nil {
			return err
		}

		category = c
	}

	c, err := newClassifier(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if explain, _ := cmd.Flags().GetBool("explain"); explain {
		printExplanation(out, c.Explain(title, category))
	}

	result := c.Classify(title, category)
	if result.IsUnknown() {
		fmt.Fprintf(out, "no match (category: %s)\n", orNone(string(result.Category)))
		return nil
	}

	fmt.Fprintf(out, "%s %s (%s)\n", result.Manufacturer, result.Model, result.Category)

	return nil
}

func printExplanation(w io.Writer, exp classifier.Explanation) {
	fmt.Fprintf(w, "tokens: %s\n", strings.Join(quoteAll(exp.Tokens), " "))
	fmt.Fprintf(w, "grams:  %s\n", strings.Join(quoteAll(exp.Grams), " "))

	if exp.Match != nil {
		fmt.Fprintf(w, "match:  %q ~ %q score %.3f\n", exp.Match.Gram, exp.Match.Model, exp.Match.Score)
	}
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}

	return out
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}

	return s
}
