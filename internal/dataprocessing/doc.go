// Package dataprocessing loads the student and room sources and joins them.
//
// # Components
//
//  1. Loader: reads both JSON sources, decodes them into raw objects and runs
//     the record validator over every element
//  2. Combiner: groups students under the room whose id they reference
//
// # Usage
//
//	loader := dataprocessing.NewLoader(logger)
//	students, rooms, err := loader.Load(ctx, "students.json", "rooms.json")
//	if err != nil {
//	    return err
//	}
//	combined := dataprocessing.NewCombiner(logger).Combine(students, rooms)
//
// # Error Handling
//
// Load returns *errors.AppError values typed NOT_FOUND, DECODE or VALIDATION.
// A single bad record rejects the whole batch. Combine never fails: students
// pointing at unknown rooms are dropped and only counted in the debug log.
package dataprocessing
