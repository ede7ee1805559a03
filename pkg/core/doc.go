// Package core defines the shared language of the analyst demo.
//
// This package contains:
//   - Display values and sample tables (Value, Row, SampleTable)
//   - Example query triples (ExampleQuery)
//   - The view tree handed to a rendering runtime (ViewTree, Section, Block)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
