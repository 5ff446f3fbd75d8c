// Meridian validates privacy taxonomy manifests: data categories,
// qualifiers, uses, subjects, datasets, systems, policies, and
// organizations.
//
// Usage:
//
//	# Validate a manifest file or a directory of manifests
//	meridian validate ./manifests
//
//	# Validate and print machine-readable output
//	meridian validate taxonomy.yaml --format json
//
//	# Revalidate on every edit, serving metrics on :9105
//	meridian watch ./manifests --metrics-addr :9105
//
//	# Show version information
//	meridian version
package main

func main() {
	Execute()
}
