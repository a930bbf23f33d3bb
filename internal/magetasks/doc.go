// Package magetasks holds the build, lint and test tasks behind psr's
// magefile. Commands run through mage's sh helpers so their output streams
// straight to the terminal.
package magetasks
