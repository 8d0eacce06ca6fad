// Package core provides a small, stable facade over the internal parser
// selection and hex dump machinery for external integrations. It deliberately
// re-exports a narrow API surface so other tools can depend on a stable
// import path without touching internal packages.
//
// Example:
//
//	results, err := core.FindAllParsers(nil, nil, "winxp,-winreg")
//	if err != nil { /* handle */ }
//	for _, p := range results["all"] { fmt.Println(p.Name()) }
package core
