// Package recommendations loads raw analyst recommendation tables from
// per-ticker CSV or Excel files.
//
// The loader owns input-shape concerns so the event builder never has to:
// column names are standardized (trimmed, lowercased, spaces collapsed to
// underscores), timestamps are parsed against the layouts seen in the wild,
// and every record is validated for the required date/firm/action fields.
// Shape problems are fatal and reported as typed application errors with the
// offending source and row attached.
package recommendations
