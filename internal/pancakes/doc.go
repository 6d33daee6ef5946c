// Package pancakes holds the parts of the pancakes demo that do not touch
// SDL: configuration, localized titles, store selection, and the snapshot
// report printed by the inspect command.
package pancakes
