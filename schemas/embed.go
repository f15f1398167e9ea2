// Package schemas holds the JSON Schemas describing the validator's output.
package schemas

import _ "embed"

// RunResult is the schema of the JSON document written by `validate --out`.
//
//go:embed run_result.schema.json
var RunResult string
