// Package product provides the inventory item entity. Products are
// provisioned externally; this system only moves their stock, through
// Decrease and Restore, which together uphold the non-negative stock
// invariant.
package product
