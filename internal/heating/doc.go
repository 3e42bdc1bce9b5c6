// Package heating turns a command-line argument into an action on the Hive
// heating node: print its status, switch its mode, or set a target temperature.
//
// # Commands
//
//	(no argument)          print status
//	off | manual | schedule  set mode (case-sensitive)
//	<number>               set target temperature in °C
//
// Setting a target while the heating is OFF also switches it to MANUAL in the
// same request.
package heating
