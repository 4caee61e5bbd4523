// Package cachesim holds the value types shared by every package in this
// module: the trace operations a simulation consumes, and the step/stats
// records a simulation produces.
//
// The package itself contains no behavior — policy implementations live in
// [github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator/policy],
// the driver that threads a trace through a policy lives in
// .../simulator, and the trace/host boundaries live in .../trace and .../host.
package cachesim
