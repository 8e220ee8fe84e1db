// Package mnk contains the Monk job modules.
package mnk
