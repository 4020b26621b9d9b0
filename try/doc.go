// Package try turns failing or panicking calls into values.
//
// # Result
//
// [Result][T] is a tagged variant: either a success carrying a T or a
// failure carrying an error. [Of], [Call] and [CallE] run a function and
// capture both returned errors and panics (as [*PanicError]) in a Result:
//
//	r := try.Call(0, func(d int) int { return 10 / d })
//	r.IsErr()      // → true
//	r.OrElse(-1)   // → -1
//
// # Catch-all helpers
//
// [Do], [Or], [Get], [GetOr], [Run] and [RunOr] are a deliberate escape
// hatch. They collapse every failure kind into a default value and a
// boolean, including runtime panics such as integer division by zero, nil
// dereference or index out of range, which would normally signal a
// programming error:
//
//	try.Or(0, func(d int) int { return 1 / d }, -1) // → -1
//
// The cause is discarded at this boundary. Callers that need it should use
// [Call] or [CallE] and inspect the Result instead.
//
// # Logging
//
// Swallowed failures are written at Debug level to the package logger, a
// logrus.FieldLogger that discards everything until [SetLogger] installs a
// real one.
package try
