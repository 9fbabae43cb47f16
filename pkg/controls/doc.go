// Package controls implements the live control instances a binding session
// owns. Controls hold a value, validate writes against their own constraints
// and notify observers synchronously, in subscription order, whenever a
// committed write actually changes the value.
package controls
