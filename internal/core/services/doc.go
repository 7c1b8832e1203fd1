// Package services implements the driving ports on top of the driven
// ports. It contains the conversion pipeline orchestration and the
// library read service; all I/O happens behind injected interfaces.
package services
