// Package app runs one roomroster invocation: it loads the student and room
// sources, combines them and exports the result.
//
// # Flow
//
//  1. Resolve and check the output format
//  2. Load and validate both sources (dataprocessing.Loader)
//  3. Join students into rooms (dataprocessing.Combiner)
//  4. Render and write the payload (exporter.Exporter)
//
// Each step runs only after the previous one finished and each is wrapped in
// its own span under "roomroster.run". Any error stops the run before
// output is written; callers report it exactly once.
//
// # Usage
//
//	application := app.NewApplication(cfg, logger, tracer, os.Stdout)
//	err := application.Run(ctx, app.Request{
//	    StudentsSource: "students.json",
//	    RoomsSource:    "rooms.json",
//	    Format:         "json",
//	})
package app
