// Package report renders analysis results as plain text.
package report

import (
	"fmt"
	"io"
	"strings"

	"dataproc/internal/models"
)

const rule = "==========================================="

// WriteRecordSummary prints a generated record set: count, mean, elapsed time
// and its sample records.
func WriteRecordSummary(w io.Writer, s models.RecordSummary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Processed %d records\n", s.Count)
	fmt.Fprintf(&b, "Average value: %.2f\n", s.Mean)
	fmt.Fprintf(&b, "Time elapsed: %v\n", s.Elapsed)
	b.WriteString("\nSample records:\n")
	for _, r := range s.Sample {
		fmt.Fprintf(&b, "  Record ID: %d, Value: %.2f\n", r.ID, r.Value)
	}
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteStatistics prints the manifest analysis block.
func WriteStatistics(w io.Writer, s models.Statistics) error {
	var b strings.Builder
	b.WriteString("\n--- Manifest Analysis ---\n")
	fmt.Fprintf(&b, "Total passengers processed: %d\n", s.TotalPassengers)
	fmt.Fprintf(&b, "Passengers who survived: %d\n", s.SurvivedPassengers)
	fmt.Fprintf(&b, "Survival rate: %.2f%%\n", s.SurvivalRate)
	fmt.Fprintf(&b, "Male passengers: %d\n", s.MalePassengers)
	fmt.Fprintf(&b, "Female passengers: %d\n", s.FemalePassengers)
	b.WriteString("-------------------------\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteBanner prints the title block shown before any results.
func WriteBanner(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", rule, title, rule)
	return err
}
