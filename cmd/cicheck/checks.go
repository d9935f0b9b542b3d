package main

import "github.com/vertti/cicheck/pkg/check"

// registry holds the checks for this run. main fills it from defaultChecks.
var registry []check.Check

// defaultChecks lists the project's CI checks in the order they run.
// Add custom checks here, either as shell commands or as predicates:
//
//	{Label: "Lockfile", Action: predicate.FileExists("pnpm-lock.yaml")},
//	{Label: "Schema", Action: check.Predicate("", schemaUpToDate)},
func defaultChecks() []check.Check {
	return []check.Check{
		{Label: "Biome check", Action: check.Shell("pnpm run check")},
		{Label: "Build", Action: check.Shell("pnpm run build")},
	}
}
