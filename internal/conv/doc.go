// Package conv converts loosely typed values (maps decoded from tool
// arguments) into the typed inputs of portal actions, and carries a couple of
// pointer helpers.
package conv
