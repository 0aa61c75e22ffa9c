// Package blackhole provides the observation sink for the benchmark shims.
//
// Every bulk operation in this repository produces values the external
// timing driver never looks at. Without an escape hatch the compiler can
// prove those values dead and delete the very loop being measured. The
// functions here are that escape hatch: no-inline consumers that write to
// package-level variables, so the optimizer must assume every consumed
// value is live.
//
// The contract is "looks used to the optimizer", nothing more. None of
// these functions have an observable effect.
package blackhole

// Sink variables. Exported so a linker cannot prove them write-only
// within the package.
var (
	SinkInt  int
	SinkBool bool
	SinkUint uint64
	SinkAny  any
)

// Consume makes an int value look used.
//
//go:noinline
func Consume(v int) {
	SinkInt = v
}

// ConsumeBool makes a bool value look used.
//
//go:noinline
func ConsumeBool(v bool) {
	SinkBool = v
}

// ConsumeUint makes a uint64 value look used.
//
//go:noinline
func ConsumeUint(v uint64) {
	SinkUint = v
}

// Escape makes a whole object look used, forcing it to stay live.
// The benchmark analogue of leaking a pointer to a separate
// compilation unit.
//
//go:noinline
func Escape(v any) {
	SinkAny = v
}

// Identity returns its argument through a call the compiler will not
// inline. Used inside measured loops to keep the loop body from being
// specialized or hoisted away.
//
//go:noinline
func Identity(v int) int {
	return v
}
