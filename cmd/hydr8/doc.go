// Command hydr8 inspects configuration files the way the hydr8 packages see
// them: which subtree a path resolves to, which path a function location
// derives, and which keys a section holds.
package main
