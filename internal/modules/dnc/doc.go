// Package dnc contains the Dancer job modules.
package dnc
