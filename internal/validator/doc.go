// Package validator lints portfolio content.
//
// Serving is lenient: malformed metadata falls back to defaults and entries
// with unparseable front matter are left out of listings. This package
// reports those situations instead of hiding them, so authors can fix
// them before publishing.
//
// # Core Concepts
//
//   - [Severity]: errors mark entries that cannot be served, warnings mark
//     entries served with defaults applied, info notes unknown keys.
//   - [Issue]: a single problem, tied to an entry and a front matter key.
//   - [Result]: aggregates issues and counts the entries checked.
//
// # Basic Usage
//
//	result, err := validator.CheckSite(site)
//	if err != nil {
//		return err
//	}
//	_ = validator.NewReporter(os.Stdout, validator.FormatText, false).Report(result)
package validator
