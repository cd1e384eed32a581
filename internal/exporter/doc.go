// Package exporter writes generated event tables to CSV files.
//
// CSVWriter handles the mechanics (directory creation, UTF-8 BOM for Excel
// compatibility); EventExporter maps event rows onto the well-known
// per-ticker file layout from the config package.
package exporter
