// Package xattr reads, writes, removes and lists filesystem extended attributes.
//
// Every function is a thin wrapper over the POSIX xattr syscalls with the
// default namespace handling and flags=0. On Linux the caller supplies the
// full attribute name including its namespace prefix (for example
// "user.comment"); on Darwin names are used as-is.
//
// Failures are returned as *AttributeError values which carry the numeric
// errno, the OS error string and a platform-independent ErrorCode:
//
//	data, err := xattr.Get("/tmp/note.md", "user.tags")
//	if xattr.IsNotFound(err) {
//	    // attribute not set
//	}
//
// Platforms without POSIX xattrs compile against a stub whose operations all
// fail with ErrNotSupported.
package xattr
