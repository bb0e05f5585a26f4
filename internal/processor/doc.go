// Package processor contains the orchestration shared by the GUI and the
// headless command. It applies the input limits, runs the translation
// pipeline, hands the panels to the front end and writes the CSV export.
package processor
