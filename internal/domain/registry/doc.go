// Package registry provides the catalog of launchable desktop applications.
//
// The catalog is ordered: List returns apps in the order they were
// registered, which is the order the launcher shows them. Apps can be added
// at runtime with Register; existing ids are never replaced.
//
// Example Usage:
//
//	catalog := registry.Default()
//	app, err := catalog.Find("viewer")
//	for _, app := range catalog.List() {
//	    ...
//	}
package registry
