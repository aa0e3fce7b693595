// Package puzzle connects raw puzzle input to the wire and orbit engines.
//
// What:
//
//   - Loader fetches input by URL through github.com/viant/afs, so local
//     paths, file:// and any other registered storage scheme work alike.
//   - SplitWireInput and SplitOrbitInput check the line structure of each
//     input shape before any parsing happens.
//   - Solution binds a day/part to the algorithm it runs; the algorithm is
//     injected (a wire.Metric or an orbit query) rather than hard-wired.
//   - Runner loads, fingerprints, solves and logs a single Solution.
//
// Errors:
//
//   - ErrInput    the input could not be read; the storage error is kept in
//     the chain.
//   - ErrFormat   the input has the wrong line structure; reported as a
//     *FormatError.
//   - wire and orbit parse errors pass through unchanged.
//
// A Result with Found == false is not an error: it means the wires never
// cross, or there is no route between the two objects.
package puzzle
