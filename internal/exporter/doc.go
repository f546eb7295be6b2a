// Package exporter renders combined room records as JSON or XML.
//
// The set of formats is closed: FormatJSON and FormatXML. Any other name is
// rejected by ParseFormat and Render with an UNSUPPORTED_FORMAT error.
//
// Payloads are built fully in memory before anything is written, so a
// failed export never leaves partial output behind.
//
// Example usage:
//
//	format, err := exporter.ParseFormat("xml")
//	if err != nil {
//		return err
//	}
//	err = exporter.NewExporter(logger).Export(os.Stdout, rooms, format)
package exporter
