// Package resource locates named property resources across an ordered set of
// resource roots.
//
// A root is any fs.FS: a directory on disk, an embed.FS compiled into the
// binary, or an in-memory fstest.MapFS in tests. Roots are searched in the
// order they were given, and every root holding a matching name contributes
// one Ref.
//
// # Naming
//
// Each prefix maps to two resource names. With the default Naming, prefix
// "tomee.remote" maps to:
//
//	default.arquillian-tomee-remote.properties   (defaults)
//	arquillian-tomee-remote.properties           (overrides)
//
// Locate returns every defaults resource for every prefix before any
// overrides resource, so that merging the layers in order lets override
// files win over default files.
//
// # Usage
//
//	roots := resource.Roots{
//	    resource.DirRoot("conf"),
//	    resource.FSRoot("embedded", embeddedFS),
//	}
//	loc := resource.NewLocator(roots)
//	refs := loc.Locate("db", "cache")
//
// Search failures never stop a Locate call. They are logged at warn level and
// the failing name contributes nothing.
package resource
