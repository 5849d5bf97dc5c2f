// Package analysis derives secondary curves from the physics functions:
// the momentum-kernel ridge (the q maximizing the kernel at each
// standoff distance) and its slope in log-log space.
package analysis
