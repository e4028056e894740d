// Package manifest describes an icon package as a TOML, YAML or JSON document
// and builds it into an iconjar.Package.
//
// A minimal TOML manifest:
//
//	name = "Animals"
//
//	[licenses.mit]
//	name = "MIT"
//	url = "https://opensource.org/licenses/MIT"
//
//	[[sets]]
//	name = "Mammals"
//	license = "mit"
//
//	[[sets.icons]]
//	name = "Bear"
//	file = "svg/bear.svg"
//	tags = ["animal", "bear"]
//
// Icon files are resolved relative to the directory holding the manifest.
package manifest
