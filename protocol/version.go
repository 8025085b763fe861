// Package protocol implements the Carver serial line protocol: the byte-sink
// abstraction and the number-to-text primitives used to build report lines
// without a general-purpose formatted-print facility.
package protocol

// Name is the controller name announced in the welcome message.
const Name = "Carver"

// Version represents the Carver firmware version
const Version = "0.9d"

// Build is the build date tag reported by the build-info line.
const Build = "20260815"
