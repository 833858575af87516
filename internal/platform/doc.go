// Package platform papers over operating system differences in file
// permission handling for the synthesizer. On Unix systems it applies
// permission bits through the given filesystem. On Windows, which has no
// Unix-style permission bits, changes are skipped.
package platform
