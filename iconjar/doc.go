// Package iconjar builds IconJar icon packages.
//
// A package is a tree of groups and sets, where sets hold icons and both
// sets and icons may reference a license. The tree is assembled in memory
// and written with Save as a directory:
//
//	<name>.iconjar/
//	  icons/   copies of the icon files under collision-free names
//	  META     gzip-compressed JSON metadata
//
// Entities live in an arena owned by their Package and refer to each other
// by ID. Builder methods return their receiver so calls can be chained:
//
//	pkg := iconjar.New("example set")
//	pkg.AddNewGroup("Just a test Group", func(g *iconjar.Group) {
//		g.AddNewSet("Example Set", func(s *iconjar.Set) {
//			s.AddNewIcon("Some Bear", "example.png", func(i *iconjar.Icon) {
//				i.SetDimensions(10, 10).AddTags("example", "bear")
//			})
//		})
//	})
//	dir, err := pkg.Save("exports", true)
//
// Chaining methods record their first failure; Save reports it before
// touching the filesystem. Attach returns errors directly.
//
// Saving walks the tree depth-first, parents before children. Icons are
// validated, given a unique name in icons/ and copied as they are reached.
// There is no rollback: a failed Save may leave a partial package behind.
package iconjar
