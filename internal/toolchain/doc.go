// Package toolchain runs the Node.js tooling a synthesized blueprint needs
// after its files are written: it checks the installed Node.js version and
// installs dependencies with npm or another package manager.
package toolchain
