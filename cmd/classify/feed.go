package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/aerooffers/internal/importer"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

func feedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed [file]",
		Short: "Classify every offer of a feed file",
		Long: `Classify every offer of a CSV feed or JSON lines file and print
id;category;manufacturer;model, one line per offer in feed order. Unmatched
offers have empty manufacturer and model.`,
		Args: cobra.ExactArgs(1),
		RunE: runFeed,
	}

	cmd.Flags().String("format", string(importer.FormatFeed), "input format (feed, jsonl)")

	return cmd
}

func runFeed(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening feed: %w", err)
	}
	defer f.Close()

	format, _ := cmd.Flags().GetString("format")

	offers, err := importer.NewService().Import(importer.Format(format), f)
	if err != nil {
		return fmt.Errorf("parsing feed: %w", err)
	}

	c, err := newClassifier(cmd)
	if err != nil {
		return err
	}

	pending := make([]offer.UnclassifiedOffer, 0, len(offers))
	for _, o := range offers {
		pending = append(pending, offer.UnclassifiedOffer{ID: o.ID, Title: o.Title, Category: o.Category})
	}

	results := c.ClassifyMany(pending)

	w := csv.NewWriter(cmd.OutOrStdout())
	w.Comma = ';'

	for _, o := range pending {
		r := results[o.ID]
		if err := w.Write([]string{o.ID, string(r.Category), r.Manufacturer, r.Model}); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}

	w.Flush()

	return w.Error()
}
